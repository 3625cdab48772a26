// Package validation provides input validation helpers shared by the devfile
// model and the interactive wizards.
package validation

import "regexp"

// DNS-1123 label, the format the devfile schema uses for component and
// endpoint names:
// - Lowercase letters, digits and '-'
// - Must start and end with an alphanumeric character
var dnsLabelRegex = regexp.MustCompile(`^[a-z0-9]([-a-z0-9]*[a-z0-9])?$`)

// Shell identifier, so the variable can be referenced as ${NAME} in command
// lines.
var envNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsDNSLabel reports whether name is a DNS-1123 label of at most maxLen
// characters.
func IsDNSLabel(name string, maxLen int) bool {
	if name == "" || len(name) > maxLen {
		return false
	}
	return dnsLabelRegex.MatchString(name)
}

// IsEnvName reports whether name is a valid environment variable name.
func IsEnvName(name string) bool {
	return envNameRegex.MatchString(name)
}
