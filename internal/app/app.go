// Package app provides the application initialization and wiring.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	// Adapters - Output
	"github.com/bnema/devfile-wizard/internal/adapters/out/filesystem"
	"github.com/bnema/devfile-wizard/internal/adapters/out/identity"
	"github.com/bnema/devfile-wizard/internal/adapters/out/viewer"

	// Boundaries
	"github.com/bnema/devfile-wizard/internal/boundaries/out"

	// Config
	"github.com/bnema/devfile-wizard/internal/config"

	// Use cases
	"github.com/bnema/devfile-wizard/internal/usecase/devfile"
	"github.com/bnema/devfile-wizard/internal/usecase/wizard"

	// Pkg
	"github.com/bnema/devfile-wizard/pkg/logger"
)

// App holds the wired services for one CLI invocation.
type App struct {
	Config   config.Config
	Store    *devfile.Service
	Wizard   *wizard.Service
	Terminal *viewer.Terminal
}

// New wires the adapters and use cases for cfg and initializes the devfile
// store. A devfile that cannot be used is not an error here: the store is left
// blocked and reports why through Blocked.
func New(ctx context.Context, cfg config.Config, prompter out.Prompter, stdout io.Writer) (*App, error) {
	initLogger(cfg)

	if stdout == nil {
		stdout = os.Stdout
	}

	validator, err := devfile.NewValidator(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create validator: %w", err)
	}

	store := devfile.NewService(
		cfg.Root,
		validator,
		filesystem.NewLocal(),
		prompter,
		viewer.New(cfg.Viewer.Editor, cfg.Viewer.Style, stdout),
		identity.NewEnv(cfg.Root, cfg.Identity.Env),
	)

	if err := store.Initialize(ctx); err != nil {
		if store.Blocked() == nil {
			return nil, fmt.Errorf("failed to initialize devfile store: %w", err)
		}
		logger.Debug("Devfile store is blocked", "error", err)
	}

	probe := store.Probe()
	logger.Debug("Devfile store initialized",
		"root", cfg.Root,
		"probe", probe.Result,
		"path", probe.Path,
		"strategy", store.Strategy(),
	)

	return &App{
		Config:   cfg,
		Store:    store,
		Wizard:   wizard.NewService(store, prompter, wizard.Options{OpenAfterSave: cfg.OpenAfterSave}),
		Terminal: viewer.NewTerminal(stdout, cfg.Viewer.Style),
	}, nil
}

// initLogger applies the configured level. DEVFILE_LOG_LEVEL wins over the
// config file.
func initLogger(cfg config.Config) {
	log := logger.GetLogger()
	log.SetLogLevel(cfg.LogLevel)
	log.ConfigureFromEnv()
}
