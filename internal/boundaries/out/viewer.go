package out

import "context"

// DocumentViewer opens a written devfile for the user to look at.
type DocumentViewer interface {
	// Open displays the file at path.
	Open(ctx context.Context, path string) error
}
