package devfile

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/bnema/devfile-wizard/internal/boundaries/out"
	"github.com/bnema/devfile-wizard/internal/domain"
	"github.com/bnema/devfile-wizard/pkg/logger"
)

// CandidateNames lists the devfile names looked up under the project root, in
// priority order. The first entry is also where new documents are written.
var CandidateNames = []string{".devfile.yaml", "devfile.yaml"}

// PrimaryPath returns the path new documents are written to under root.
func PrimaryPath(root string) string {
	return filepath.Join(root, CandidateNames[0])
}

// ProbeRoot looks for a devfile under root. It never retries: the first
// unexpected failure yields ProbeUnknown.
func ProbeRoot(fsys out.FileSystem, root string) domain.Probe {
	if root == "" {
		return domain.Probe{Result: domain.ProbeUnknown, Err: domain.ErrNoProjectOpen}
	}

	info, err := fsys.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Probe{Result: domain.ProbeUnknown, Path: root, Err: fmt.Errorf("%w: %s does not exist", domain.ErrNoProjectOpen, root)}
		}
		return domain.Probe{Result: domain.ProbeUnknown, Path: root, Err: fmt.Errorf("%w: stat %s: %v", domain.ErrIOFailure, root, err)}
	}
	if !info.IsDir() {
		return domain.Probe{Result: domain.ProbeUnknown, Path: root, Err: fmt.Errorf("%w: %s is not a directory", domain.ErrNoProjectOpen, root)}
	}

	for _, name := range CandidateNames {
		path := filepath.Join(root, name)
		info, err := fsys.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			logger.Error("Failed to probe devfile candidate", "path", path, "error", err)
			return domain.Probe{Result: domain.ProbeUnknown, Path: path, Err: fmt.Errorf("%w: stat %s: %v", domain.ErrIOFailure, path, err)}
		}

		if !info.Mode().IsRegular() {
			logger.Debug("Devfile candidate is not a regular file", "path", path, "mode", info.Mode().String())
			return domain.Probe{Result: domain.ProbeNotAFile, Path: path, Err: fmt.Errorf("%w: %s", domain.ErrNotAFile, path)}
		}

		logger.Debug("Devfile found", "path", path)
		return domain.Probe{Result: domain.ProbeExist, Path: path}
	}

	logger.Debug("No devfile found", "root", root)
	return domain.Probe{Result: domain.ProbeNotExist, Path: PrimaryPath(root)}
}
