package domain

import "errors"

// Domain errors represent business-level errors that can occur in the system.
// These errors are used across layers to communicate specific failure conditions.
var (
	// Lifecycle errors
	ErrNoProjectOpen    = errors.New("no project is open")
	ErrNotAFile         = errors.New("devfile path is not a regular file")
	ErrValidationFailed = errors.New("devfile validation failed")
	ErrIOFailure        = errors.New("filesystem operation failed")
	ErrSaveForbidden    = errors.New("saving the devfile is forbidden")
	ErrNoDevfile        = errors.New("no devfile is loaded")

	// ErrUserCancelled is a control signal, not a failure: the user dismissed a
	// prompt and the current flow must unwind without further side effects.
	ErrUserCancelled = errors.New("cancelled by user")

	// Input errors
	ErrEmptyValue  = errors.New("value cannot be empty")
	ErrInvalidName = errors.New("invalid name")

	// Component errors
	ErrComponentExists   = errors.New("component with this name already exists")
	ErrComponentNotFound = errors.New("component not found")
	ErrNotAContainer     = errors.New("component is not a container")
	ErrNoContainer       = errors.New("devfile has no container component")
	ErrImageExists       = errors.New("container with this image already exists")
	ErrInvalidImage      = errors.New("invalid container image")

	// Endpoint errors
	ErrEndpointNameTooLong = errors.New("endpoint name is too long")
	ErrEndpointExists      = errors.New("endpoint with this name already exists")
	ErrPortExposed         = errors.New("this port is already exposed")
	ErrInvalidPort         = errors.New("invalid port")
	ErrInvalidExposure     = errors.New("invalid endpoint exposure")

	// Environment errors
	ErrEnvVarExists = errors.New("environment variable with this name already exists")

	// Command errors
	ErrCommandExists      = errors.New("command with this identifier already exists")
	ErrCommandLabelExists = errors.New("command with this label already exists")
)
