// Package wizard implements the interactive flows that build up a devfile:
// new document, container, endpoint, environment variable and command. Every
// flow returns domain.ErrUserCancelled when the user dismisses a prompt.
// Mutations applied before the cancellation stay in the document.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/devfile-wizard/internal/boundaries/in"
	"github.com/bnema/devfile-wizard/internal/boundaries/out"
	"github.com/bnema/devfile-wizard/internal/domain"
	"github.com/bnema/devfile-wizard/pkg/logger"
)

// Options tunes the wizards.
type Options struct {
	// OpenAfterSave opens the devfile in the viewer after each save.
	OpenAfterSave bool
}

// Service runs the wizards against a devfile store.
type Service struct {
	store    in.DevfileStore
	prompter out.Prompter
	opts     Options
}

// NewService creates a new wizard service.
func NewService(store in.DevfileStore, prompter out.Prompter, opts Options) *Service {
	return &Service{
		store:    store,
		prompter: prompter,
		opts:     opts,
	}
}

// document returns the current devfile or the reason there is none.
func (s *Service) document() (*domain.Devfile, error) {
	if doc := s.store.Current(); doc != nil {
		return doc, nil
	}
	if err := s.store.Blocked(); err != nil {
		return nil, err
	}
	return nil, domain.ErrNoDevfile
}

func (s *Service) save(ctx context.Context, message string) error {
	return s.store.Save(ctx, in.SaveOptions{Message: message, Open: s.opts.OpenAfterSave})
}

// ensureContainer makes sure doc has at least one container, offering to
// create one when it has none.
func (s *Service) ensureContainer(ctx context.Context, doc *domain.Devfile) error {
	if doc.ContainerCount() > 0 {
		return nil
	}

	idx, err := s.prompter.Select(ctx, out.SelectConfig{
		Message: "You need to add at least one container first",
		Options: out.Labels("New Container", "Cancel"),
	})
	if err != nil {
		return err
	}
	if idx != 0 {
		return domain.ErrUserCancelled
	}
	return s.NewContainer(ctx)
}

// selectContainer picks the container a new item is added to. A single
// container is selected without asking.
func (s *Service) selectContainer(ctx context.Context, doc *domain.Devfile, message string) (*domain.Component, error) {
	containers := doc.ContainerComponents()
	switch len(containers) {
	case 0:
		return nil, domain.ErrNoContainer
	case 1:
		return containers[0], nil
	}

	options := make([]out.Option, 0, len(containers))
	for _, c := range containers {
		options = append(options, out.Option{Label: c.Name, Detail: c.Container.Image})
	}

	idx, err := s.prompter.Select(ctx, out.SelectConfig{Message: message, Options: options})
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(containers) {
		return nil, domain.ErrUserCancelled
	}
	return containers[idx], nil
}

// optional turns a cancellation into an empty answer.
func optional(value string, err error) (string, error) {
	if errors.Is(err, domain.ErrUserCancelled) {
		return "", nil
	}
	return value, err
}

func notEmpty(field string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s: %w", field, domain.ErrEmptyValue)
		}
		return nil
	}
}

func cancelled(flow string, err error) error {
	if errors.Is(err, domain.ErrUserCancelled) {
		logger.Debug("Wizard cancelled", "flow", flow)
	}
	return err
}
