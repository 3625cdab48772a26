package wizard

import (
	"context"
	"fmt"

	"github.com/bnema/devfile-wizard/internal/boundaries/out"
	"github.com/bnema/devfile-wizard/internal/domain"
	"github.com/bnema/devfile-wizard/pkg/logger"
)

// NewDevfile replaces the current document with an empty one and saves it.
// The user is asked first when the current document came from disk.
func (s *Service) NewDevfile(ctx context.Context) error {
	if err := s.store.Blocked(); err != nil {
		return err
	}

	if s.store.Loaded() {
		idx, err := s.prompter.Select(ctx, out.SelectConfig{
			Message: "This project already has a devfile",
			Options: out.Labels("Create New", "Cancel"),
		})
		if err != nil {
			return cancelled("devfile", err)
		}
		if idx != 0 {
			return cancelled("devfile", domain.ErrUserCancelled)
		}
	}

	name, err := s.prompter.Input(ctx, out.InputConfig{
		Message:  "New devfile name",
		Default:  s.store.DefaultName(),
		Validate: notEmpty("devfile name"),
	})
	if err != nil {
		return cancelled("devfile", err)
	}

	s.store.Reset(name)
	logger.Debug("New devfile started", "name", name)

	return s.save(ctx, fmt.Sprintf("Devfile '%s' has been created successfully", name))
}
