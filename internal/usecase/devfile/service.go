// Package devfile implements the devfile lifecycle: probing the project root,
// validating what is found, owning the in-memory document and writing it back
// according to the resolved update strategy.
package devfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bnema/devfile-wizard/internal/boundaries/in"
	"github.com/bnema/devfile-wizard/internal/boundaries/out"
	"github.com/bnema/devfile-wizard/internal/domain"
	"github.com/bnema/devfile-wizard/pkg/logger"
)

const (
	answerUpdate    = "Update"
	answerOverwrite = "Overwrite"
	answerCancel    = "Cancel"
)

// Service implements the DevfileStore interface. It is a single-owner
// resource: callers must not use it from more than one goroutine at a time.
type Service struct {
	fs        out.FileSystem
	prompter  out.Prompter
	viewer    out.DocumentViewer
	identity  out.IdentityProvider
	validator *Validator
	root      string

	doc    *domain.Devfile
	source string
	loaded bool

	// persisted is true while the file at source holds this document, either
	// because it was read from there or because it was written there.
	persisted bool

	probe    domain.Probe
	strategy domain.UpdateStrategy
	blockErr error
}

var _ in.DevfileStore = (*Service)(nil)

// NewService creates a new devfile service for the project at root. The
// viewer and identity provider are optional.
func NewService(
	root string,
	validator *Validator,
	fsys out.FileSystem,
	prompter out.Prompter,
	viewer out.DocumentViewer,
	identity out.IdentityProvider,
) *Service {
	return &Service{
		fs:        fsys,
		prompter:  prompter,
		viewer:    viewer,
		identity:  identity,
		validator: validator,
		root:      root,
		strategy:  domain.StrategyForbidden,
	}
}

// Initialize probes the project root. A missing devfile yields a fresh
// document, an existing one is read and validated. Any other outcome leaves
// the service without a document and saves are refused.
func (s *Service) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.doc = nil
	s.loaded = false
	s.persisted = false
	s.blockErr = nil

	s.probe = ProbeRoot(s.fs, s.root)
	s.source = s.probe.Path
	logger.Debug("Devfile probe finished", "root", s.root, "result", s.probe.Result, "path", s.probe.Path)

	switch s.probe.Result {
	case domain.ProbeNotExist:
		s.doc = domain.NewDevfile(s.DefaultName())
		s.setStrategy(domain.ResolveStrategy(domain.ProbeNotExist, false))
		return nil

	case domain.ProbeExist:
		raw, err := s.fs.ReadFile(s.source)
		if err != nil {
			logger.Error("Failed to read devfile", "path", s.source, "error", err)
			return s.block(fmt.Errorf("%w: read %s: %v", domain.ErrIOFailure, s.source, err))
		}

		result := s.validator.Validate(raw)
		if !result.Valid() {
			logger.Warn("Devfile is not valid, leaving it untouched", "path", s.source, "reason", result.Reason)
			s.setStrategy(domain.ResolveStrategy(domain.ProbeExist, false))
			s.blockErr = fmt.Errorf("%w: %s: %s", domain.ErrValidationFailed, s.source, result.Reason)
			return s.blockErr
		}

		s.doc = result.Devfile
		s.loaded = true
		s.persisted = true
		s.setStrategy(domain.ResolveStrategy(domain.ProbeExist, true))
		logger.Debug("Devfile loaded", "path", s.source, "components", len(s.doc.Components), "commands", len(s.doc.Commands))
		return nil

	default:
		return s.block(s.probe.Err)
	}
}

func (s *Service) block(err error) error {
	s.setStrategy(domain.StrategyForbidden)
	s.blockErr = err
	return err
}

func (s *Service) setStrategy(strategy domain.UpdateStrategy) {
	if s.strategy != strategy {
		logger.Debug("Update strategy changed", "from", s.strategy, "to", strategy)
	}
	s.strategy = strategy
}

// Current returns the document, or nil when none is usable.
func (s *Service) Current() *domain.Devfile {
	return s.doc
}

// Loaded reports whether the current document was read from disk.
func (s *Service) Loaded() bool {
	return s.loaded
}

// Source returns the path the document is written to.
func (s *Service) Source() string {
	return s.source
}

// Probe returns the outcome of the last probe.
func (s *Service) Probe() domain.Probe {
	return s.probe
}

// Strategy returns the current update strategy.
func (s *Service) Strategy() domain.UpdateStrategy {
	return s.strategy
}

// Blocked returns the error that made the strategy Forbidden, if any.
func (s *Service) Blocked() error {
	return s.blockErr
}

// DefaultName suggests a document name: the workspace identity when one is
// known, then the project directory name.
func (s *Service) DefaultName() string {
	if s.identity != nil {
		if name := strings.TrimSpace(s.identity.WorkspaceName()); name != "" {
			return name
		}
	}
	if s.root != "" {
		base := filepath.Base(filepath.Clean(s.root))
		if base != "." && base != string(filepath.Separator) {
			return base
		}
	}
	return domain.DefaultDevfileName
}

// Reset discards the in-memory document and starts an empty one. The file on
// disk and the update strategy are left alone until the next save.
func (s *Service) Reset(name string) *domain.Devfile {
	s.doc = domain.NewDevfile(name)
	s.loaded = false
	s.persisted = false
	logger.Debug("Devfile reset", "name", name)
	return s.doc
}

// Render returns the canonical text of the document.
func (s *Service) Render() ([]byte, error) {
	return Serialize(s.doc)
}

// Save writes the document according to the current update strategy.
func (s *Service) Save(ctx context.Context, opts in.SaveOptions) error {
	if err := s.checkWritable(ctx); err != nil {
		return err
	}
	return s.write(ctx, s.strategy, opts)
}

// SaveConfirmed writes the document after checking, at write time, whether a
// file is already present. An existing file is only replaced after the user
// confirms. A Forbidden strategy still refuses the write.
func (s *Service) SaveConfirmed(ctx context.Context, opts in.SaveOptions) error {
	if err := s.checkWritable(ctx); err != nil {
		return err
	}

	info, err := s.fs.Stat(s.source)
	switch {
	case err == nil && !info.Mode().IsRegular():
		return fmt.Errorf("%w: %s", domain.ErrNotAFile, s.source)
	case err == nil && s.persisted:
		s.setStrategy(domain.StrategyConfirmUpdate)
	case err == nil:
		s.setStrategy(domain.StrategyConfirmRewrite)
	case errors.Is(err, fs.ErrNotExist):
		s.setStrategy(domain.StrategySilent)
	default:
		logger.Error("Failed to check devfile", "path", s.source, "error", err)
		return fmt.Errorf("%w: stat %s: %v", domain.ErrIOFailure, s.source, err)
	}

	return s.write(ctx, s.strategy, opts)
}

func (s *Service) checkWritable(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.strategy == domain.StrategyForbidden {
		if s.blockErr != nil {
			return fmt.Errorf("%w: %w", domain.ErrSaveForbidden, s.blockErr)
		}
		if s.doc == nil {
			return domain.ErrNoDevfile
		}
		return domain.ErrSaveForbidden
	}
	if s.doc == nil {
		return domain.ErrNoDevfile
	}
	return nil
}

func (s *Service) write(ctx context.Context, strategy domain.UpdateStrategy, opts in.SaveOptions) error {
	switch strategy {
	case domain.StrategyForbidden:
		return domain.ErrSaveForbidden
	case domain.StrategyConfirmUpdate:
		msg := fmt.Sprintf("%s already exists. Update it?", filepath.Base(s.source))
		if err := s.confirm(ctx, msg, answerUpdate); err != nil {
			return err
		}
	case domain.StrategyConfirmRewrite:
		msg := fmt.Sprintf("%s already exists and was not created from this devfile. Overwrite it?", filepath.Base(s.source))
		if err := s.confirm(ctx, msg, answerOverwrite); err != nil {
			return err
		}
	}

	data, err := Serialize(s.doc)
	if err != nil {
		return err
	}
	if err := s.fs.WriteFile(s.source, data); err != nil {
		logger.Error("Failed to write devfile", "path", s.source, "error", err)
		return fmt.Errorf("%w: write %s: %v", domain.ErrIOFailure, s.source, err)
	}

	s.persisted = true
	s.setStrategy(domain.StrategySilent)
	logger.Debug("Devfile written", "path", s.source, "bytes", len(data))

	if opts.Message != "" {
		if err := s.prompter.Info(ctx, opts.Message); err != nil {
			logger.Warn("Failed to show message", "error", err)
		}
	}
	if opts.Open && s.viewer != nil {
		if err := s.viewer.Open(ctx, s.source); err != nil {
			logger.Warn("Failed to open devfile", "path", s.source, "error", err)
		}
	}
	return nil
}

func (s *Service) confirm(ctx context.Context, msg, affirmative string) error {
	idx, err := s.prompter.Select(ctx, out.SelectConfig{
		Message: msg,
		Options: out.Labels(affirmative, answerCancel),
	})
	if err != nil {
		return err
	}
	if idx != 0 {
		logger.Debug("Save cancelled", "path", s.source)
		return domain.ErrUserCancelled
	}
	return nil
}
