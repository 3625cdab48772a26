// Package filesystem implements the FileSystem port on the local disk.
package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bnema/devfile-wizard/internal/boundaries/out"
	"github.com/bnema/devfile-wizard/pkg/logger"
)

// defaultFileMode is used for files that do not exist yet. Devfiles are
// project files meant to be committed, so they are world readable.
const defaultFileMode fs.FileMode = 0644

// Local implements out.FileSystem with the os package.
type Local struct{}

var _ out.FileSystem = (*Local)(nil)

// NewLocal creates a new local filesystem adapter.
func NewLocal() *Local {
	return &Local{}
}

// Stat returns file information for path. Missing paths yield an error
// wrapping fs.ErrNotExist.
func (l *Local) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile returns the content of the file at path.
func (l *Local) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile replaces the file at path. Data goes to a temporary file in the
// same directory first and is renamed into place, so readers never see a
// partial devfile. The mode of an existing file is kept.
func (l *Local) WriteFile(path string, data []byte) error {
	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set file mode: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move file to final location: %w", err)
	}

	logger.Debug("File written", "path", path, "bytes", len(data))
	return nil
}
