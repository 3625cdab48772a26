package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/devfile-wizard/internal/boundaries/out"
)

// MockPrompter is a mock implementation of out.Prompter
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) Input(ctx context.Context, cfg out.InputConfig) (string, error) {
	args := m.Called(ctx, cfg)
	return args.String(0), args.Error(1)
}

func (m *MockPrompter) Select(ctx context.Context, cfg out.SelectConfig) (int, error) {
	args := m.Called(ctx, cfg)
	return args.Int(0), args.Error(1)
}

func (m *MockPrompter) Info(ctx context.Context, msg string) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// MockDocumentViewer is a mock implementation of out.DocumentViewer
type MockDocumentViewer struct {
	mock.Mock
}

func (m *MockDocumentViewer) Open(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// MockIdentityProvider is a mock implementation of out.IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) WorkspaceName() string {
	args := m.Called()
	return args.String(0)
}
