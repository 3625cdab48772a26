package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/devfile-wizard/internal/boundaries/in"
)

func newSaveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Rewrite the devfile in canonical form",
		Long: `Write the current devfile back in canonical form. When a file is already
present you are asked before it is updated or overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}

			err = a.Store.SaveConfirmed(cmd.Context(), in.SaveOptions{
				Message: fmt.Sprintf("Devfile saved to %s", a.Store.Source()),
				Open:    a.Config.OpenAfterSave,
			})
			return finish("save", err)
		},
	}
}
