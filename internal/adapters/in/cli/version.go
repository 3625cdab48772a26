package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/devfile-wizard/pkg/version"
)

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			if short {
				_, _ = fmt.Fprintln(w, version.Version())
				return
			}
			_, _ = fmt.Fprintf(w, "devfile %s\n", version.Version())
			_, _ = fmt.Fprintf(w, "Commit: %s\n", version.Commit())
			_, _ = fmt.Fprintf(w, "Build Date: %s\n", version.BuildDate())
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Show only version number")

	return cmd
}
