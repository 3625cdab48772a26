package out

import "io/fs"

// FileSystem defines the contract for the filesystem operations the devfile
// lifecycle needs. Implementations must wrap fs.ErrNotExist when a path does
// not exist so callers can tell it apart from other failures.
type FileSystem interface {
	// Stat returns file information for path.
	Stat(path string) (fs.FileInfo, error)

	// ReadFile returns the content of the file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the content of the file at path.
	WriteFile(path string, data []byte) error
}
