package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/bnema/devfile-wizard/internal/domain"
	"github.com/bnema/devfile-wizard/internal/usecase/wizard"
	"github.com/bnema/devfile-wizard/pkg/logger"
)

type flow func(*wizard.Service, context.Context) error

func newDevfileCmd(opts *rootOptions) *cobra.Command {
	return newWizardCmd(opts, "new", "Create a new devfile",
		`Create an empty devfile named after the workspace or the project directory.
An existing valid devfile is only replaced after confirmation.`,
		(*wizard.Service).NewDevfile)
}

func newContainerCmd(opts *rootOptions) *cobra.Command {
	return newWizardCmd(opts, "container", "Add a container component",
		`Add a container component with its image and optional memory and CPU limits.`,
		(*wizard.Service).NewContainer)
}

func newEndpointCmd(opts *rootOptions) *cobra.Command {
	return newWizardCmd(opts, "endpoint", "Add an endpoint to a container",
		`Expose a container port as a named endpoint.`,
		(*wizard.Service).NewEndpoint)
}

func newEnvCmd(opts *rootOptions) *cobra.Command {
	return newWizardCmd(opts, "env", "Add an environment variable to a container",
		`Add an environment variable to a container component.`,
		(*wizard.Service).NewEnvironmentVariable)
}

func newCommandCmd(opts *rootOptions) *cobra.Command {
	return newWizardCmd(opts, "command", "Add exec commands",
		`Add one or more exec commands running in a container component.`,
		(*wizard.Service).NewCommand)
}

func newWizardCmd(opts *rootOptions, use, short, long string, run flow) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return finish(use, run(a.Wizard, cmd.Context()))
		},
	}
}

// finish turns a cancellation into a successful exit.
func finish(name string, err error) error {
	if errors.Is(err, domain.ErrUserCancelled) {
		logger.Debug("Command cancelled", "command", name)
		return nil
	}
	return err
}
