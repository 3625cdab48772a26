package in

import (
	"context"

	"github.com/bnema/devfile-wizard/internal/domain"
)

// SaveOptions tunes a single save.
type SaveOptions struct {
	// Message is shown after a successful write, naming what was created.
	Message string

	// Open asks the viewer to display the written file.
	Open bool
}

// DevfileStore defines the contract of the document lifecycle engine. It owns
// the in-memory devfile for the session and is not safe for concurrent use.
type DevfileStore interface {
	// Initialize probes the project root and loads or creates the document.
	Initialize(ctx context.Context) error

	// Current returns the document, or nil when none is usable. Callers
	// mutate it in place.
	Current() *domain.Devfile

	// Reset replaces the document with an empty one named name.
	Reset(name string) *domain.Devfile

	// DefaultName suggests a name for a new document.
	DefaultName() string

	// Loaded reports whether the current document was read from disk.
	Loaded() bool

	// Source returns the path the document is written to.
	Source() string

	// Probe returns the outcome of the last probe.
	Probe() domain.Probe

	// Strategy returns the current update strategy.
	Strategy() domain.UpdateStrategy

	// Blocked returns the error that made saving forbidden, if any.
	Blocked() error

	// Save writes the document according to the current strategy.
	Save(ctx context.Context, opts SaveOptions) error

	// SaveConfirmed writes the document after an existence check made at
	// write time, asking for confirmation when a file is already there.
	SaveConfirmed(ctx context.Context, opts SaveOptions) error

	// Render returns the canonical text of the document.
	Render() ([]byte, error)
}
