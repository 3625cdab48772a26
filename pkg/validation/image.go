package validation

import (
	"fmt"
	"strings"
)

// ParseImageReference parses an image reference into name and tag/digest.
// Supports formats:
//   - image:tag (default tag is "latest")
//   - image@sha256:... (digest)
//   - image (defaults to "latest")
//   - registry.example.com/image:tag
//   - registry.example.com:5000/image@sha256:...
//
// Returns:
//   - name: the image name (including registry if specified)
//   - reference: the tag (e.g., "latest") or digest (e.g., "sha256:...")
func ParseImageReference(imageRef string) (string, string) {
	// Check for digest reference (@sha256:...)
	if idx := strings.Index(imageRef, "@sha256:"); idx != -1 {
		return imageRef[:idx], imageRef[idx+1:]
	}

	// A colon after the last slash separates the tag, any other colon
	// belongs to a registry port.
	lastSlash := strings.LastIndex(imageRef, "/")
	if idx := strings.LastIndex(imageRef, ":"); idx > lastSlash {
		return imageRef[:idx], imageRef[idx+1:]
	}

	return imageRef, "latest"
}

// ValidateImageReference performs a shallow syntax check of a container image
// reference. Registries are not contacted.
func ValidateImageReference(imageRef string) error {
	if imageRef == "" {
		return fmt.Errorf("image reference cannot be empty")
	}
	if strings.ContainsAny(imageRef, " \t\r\n") {
		return fmt.Errorf("image reference %q contains whitespace", imageRef)
	}
	name, ref := ParseImageReference(imageRef)
	if name == "" || strings.HasSuffix(name, "/") || strings.HasPrefix(name, "/") {
		return fmt.Errorf("image reference %q has no image name", imageRef)
	}
	if ref == "" {
		return fmt.Errorf("image reference %q has an empty tag", imageRef)
	}
	return nil
}

// SameImage reports whether two references point to the same image once the
// default tag is applied.
func SameImage(a, b string) bool {
	nameA, refA := ParseImageReference(a)
	nameB, refB := ParseImageReference(b)
	return nameA == nameB && refA == refB
}
