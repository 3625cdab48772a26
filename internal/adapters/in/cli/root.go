// Package cli implements the CLI adapter for the devfile wizard.
// This package provides Cobra commands that delegate to the app layer.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bnema/devfile-wizard/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/devfile-wizard/internal/adapters/out/prompt"
	"github.com/bnema/devfile-wizard/internal/app"
	"github.com/bnema/devfile-wizard/internal/boundaries/out"
	"github.com/bnema/devfile-wizard/internal/config"
)

// rootOptions is shared by every subcommand of one root command.
type rootOptions struct {
	configPath string
	v          *viper.Viper
	prompter   out.Prompter
}

// NewRootCmd creates the root command for the devfile CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(prompt.NewSurvey(prompt.WithInfoRenderer(styles.RenderSuccess)))
}

func newRootCmd(prompter out.Prompter) *cobra.Command {
	opts := &rootOptions{v: viper.New(), prompter: prompter}

	rootCmd := &cobra.Command{
		Use:   "devfile",
		Short: "devfile - Interactive devfile editor",
		Long: `devfile creates and extends the devfile of a project: the YAML document
describing the containers, endpoints, environment variables and commands of
a cloud development workspace.

The devfile is looked up as .devfile.yaml, then devfile.yaml, in the project
root. A devfile that fails validation is never overwritten.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default is ./devfile-wizard.yaml)")
	flags.String("root", "", "Project root (default is the working directory)")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.Bool("open", false, "Open the devfile after each save")

	_ = opts.v.BindPFlag(config.KeyRoot, flags.Lookup("root"))
	_ = opts.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = opts.v.BindPFlag(config.KeyOpenAfterSave, flags.Lookup("open"))

	// Add subcommands
	rootCmd.AddCommand(newDevfileCmd(opts))
	rootCmd.AddCommand(newContainerCmd(opts))
	rootCmd.AddCommand(newEndpointCmd(opts))
	rootCmd.AddCommand(newEnvCmd(opts))
	rootCmd.AddCommand(newCommandCmd(opts))
	rootCmd.AddCommand(newSaveCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// load resolves the configuration and wires the application for cmd.
func (o *rootOptions) load(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.Load(o.v, o.configPath)
	if err != nil {
		return nil, err
	}
	return app.New(cmd.Context(), cfg, o.prompter, cmd.OutOrStdout())
}
