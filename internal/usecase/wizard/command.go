package wizard

import (
	"context"
	"fmt"

	"github.com/bnema/devfile-wizard/internal/boundaries/out"
	"github.com/bnema/devfile-wizard/internal/domain"
	"github.com/bnema/devfile-wizard/pkg/logger"
)

const (
	defaultCommandLabel      = "Sample Command"
	defaultCommandLine       = `echo "${WELCOME}"`
	defaultCommandWorkingDir = "${PROJECT_SOURCE}"
)

// NewCommand asks for exec commands until the user declines to add another
// one. Each command is saved as soon as it is complete.
func (s *Service) NewCommand(ctx context.Context) error {
	doc, err := s.document()
	if err != nil {
		return err
	}
	if err := s.ensureContainer(ctx, doc); err != nil {
		return cancelled("command", err)
	}

	for {
		if err := s.newCommand(ctx, doc); err != nil {
			return cancelled("command", err)
		}

		idx, err := s.prompter.Select(ctx, out.SelectConfig{
			Message: "Would you like to add one more command?",
			Options: out.Labels("Yes", "No"),
		})
		if err != nil {
			return cancelled("command", err)
		}
		if idx != 0 {
			return nil
		}
	}
}

func (s *Service) newCommand(ctx context.Context, doc *domain.Devfile) error {
	labelDefault := ""
	if len(doc.Commands) == 0 {
		labelDefault = defaultCommandLabel
	}

	label, err := s.prompter.Input(ctx, out.InputConfig{
		Message:  "Command label",
		Default:  labelDefault,
		Validate: doc.ValidateCommandLabel,
	})
	if err != nil {
		return err
	}

	component, err := s.selectContainer(ctx, doc, "Select a container in which the command will be executed")
	if err != nil {
		return err
	}

	commandLine, err := s.prompter.Input(ctx, out.InputConfig{
		Message:  "Command line to execute",
		Default:  defaultCommandLine,
		Validate: notEmpty("command line"),
	})
	if err != nil {
		return err
	}

	workingDir, err := s.prompter.Input(ctx, out.InputConfig{
		Message:  "Working directory of the command",
		Default:  defaultCommandWorkingDir,
		Validate: notEmpty("working directory"),
	})
	if err != nil {
		return err
	}

	cmd, err := doc.AddCommand(domain.Command{Exec: &domain.ExecCommand{
		Label:       label,
		Component:   component.Name,
		CommandLine: commandLine,
		WorkingDir:  workingDir,
	}})
	if err != nil {
		return err
	}
	logger.Debug("Command added", "id", cmd.ID, "component", component.Name)

	return s.save(ctx, fmt.Sprintf("Command '%s' has been created successfully", label))
}
