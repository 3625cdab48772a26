package wizard

import (
	"context"
	"fmt"

	"github.com/bnema/devfile-wizard/internal/boundaries/out"
	"github.com/bnema/devfile-wizard/internal/domain"
	"github.com/bnema/devfile-wizard/pkg/logger"
)

const (
	defaultEnvName  = "WELCOME"
	defaultEnvValue = "Hello World"
)

// NewEnvironmentVariable asks for a variable and adds it to a container. An
// empty value is accepted.
func (s *Service) NewEnvironmentVariable(ctx context.Context) error {
	doc, err := s.document()
	if err != nil {
		return err
	}
	if err := s.ensureContainer(ctx, doc); err != nil {
		return cancelled("env", err)
	}

	component, err := s.selectContainer(ctx, doc, "Select a container to which the new environment variable will be added")
	if err != nil {
		return cancelled("env", err)
	}
	container := component.Container

	name, err := s.prompter.Input(ctx, out.InputConfig{
		Message:  "Environment variable name",
		Default:  defaultEnvName,
		Validate: container.ValidateEnvName,
	})
	if err != nil {
		return cancelled("env", err)
	}

	value, err := s.prompter.Input(ctx, out.InputConfig{
		Message:    "Environment variable value",
		Default:    defaultEnvValue,
		AllowEmpty: true,
	})
	if err != nil {
		return cancelled("env", err)
	}

	if err := container.AddEnv(domain.EnvVar{Name: name, Value: value}); err != nil {
		return err
	}
	logger.Debug("Environment variable added", "component", component.Name, "name", name)

	return s.save(ctx, fmt.Sprintf("Environment variable '%s' has been created successfully", name))
}
