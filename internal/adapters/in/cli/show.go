package cli

import (
	"github.com/spf13/cobra"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the devfile",
		Long:  `Print the devfile in the canonical form it would be saved in.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if err := a.Store.Blocked(); err != nil {
				return err
			}

			data, err := a.Store.Render()
			if err != nil {
				return err
			}
			return a.Terminal.Render(data)
		},
	}
}
