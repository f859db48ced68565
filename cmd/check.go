package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Resolve and print only the state name",
		Long:  "check prints one of installed, updated or nothing_changed so scripts can branch on it.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := opts.wired()
			if err != nil {
				return err
			}

			state, err := app.resolver.Resolve(cmd.Context())
			if err != nil {
				return fmt.Errorf("resolve version state: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), state)
			return err
		},
	}
}
