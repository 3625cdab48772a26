// Package identity implements the IdentityProvider port from environment
// variables, such as the name a workspace orchestrator injects.
package identity

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/bnema/devfile-wizard/internal/boundaries/out"
	"github.com/bnema/devfile-wizard/pkg/logger"
)

// DefaultVariables are consulted when no variable names are configured.
var DefaultVariables = []string{"DEVWORKSPACE_NAME"}

// Env looks the workspace name up in the process environment and then in the
// project .env file. The process environment is never modified.
type Env struct {
	names  []string
	lookup func(string) (string, bool)
	file   map[string]string
}

var _ out.IdentityProvider = (*Env)(nil)

// NewEnv creates a provider reading names, in order. The .env file under root
// is read once, a missing file is not an error.
func NewEnv(root string, names []string) *Env {
	if len(names) == 0 {
		names = DefaultVariables
	}
	return &Env{
		names:  names,
		lookup: os.LookupEnv,
		file:   readDotEnv(root),
	}
}

// WorkspaceName returns the first non-empty value found.
func (e *Env) WorkspaceName() string {
	for _, name := range e.names {
		if value, ok := e.lookup(name); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	for _, name := range e.names {
		if value := strings.TrimSpace(e.file[name]); value != "" {
			return value
		}
	}
	return ""
}

func readDotEnv(root string) map[string]string {
	if root == "" {
		return nil
	}
	path := filepath.Join(root, ".env")
	values, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Failed to read env file", "path", path, "error", err)
		}
		return nil
	}
	return values
}
