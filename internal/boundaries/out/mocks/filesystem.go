package mocks

import (
	"io/fs"

	"github.com/stretchr/testify/mock"
)

// MockFileSystem is a mock implementation of out.FileSystem
type MockFileSystem struct {
	mock.Mock
}

func (m *MockFileSystem) Stat(path string) (fs.FileInfo, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(fs.FileInfo), args.Error(1)
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockFileSystem) WriteFile(path string, data []byte) error {
	args := m.Called(path, data)
	return args.Error(0)
}
