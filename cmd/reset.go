package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the last known version so the next launch is a fresh install",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := opts.wired()
			if err != nil {
				return err
			}

			if err := app.resolver.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("reset version record: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "last known version cleared")
			return err
		},
	}
}
