package devfile

import (
	"io/fs"
	"time"
)

type fakeInfo struct {
	name string
	mode fs.FileMode
}

func (i fakeInfo) Name() string       { return i.name }
func (i fakeInfo) Size() int64        { return 0 }
func (i fakeInfo) Mode() fs.FileMode  { return i.mode }
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.mode.IsDir() }
func (i fakeInfo) Sys() any           { return nil }

func dirInfo(name string) fs.FileInfo  { return fakeInfo{name: name, mode: fs.ModeDir | 0o755} }
func fileInfo(name string) fs.FileInfo { return fakeInfo{name: name, mode: 0o644} }

func notExist(path string) error {
	return &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}
