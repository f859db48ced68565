package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/appversion/internal/adapters/render/versionstate"
	"github.com/bnema/appversion/internal/application"
	"github.com/spf13/cobra"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool
	var title string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Resolve and show the current and last known version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := opts.wired()
			if err != nil {
				return err
			}

			snapshot, err := resolveSnapshot(cmd, app)
			if err != nil {
				return err
			}

			return writeSnapshotOutput(cmd, app, snapshot, title, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the resolved state as JSON")
	cmd.Flags().StringVar(&title, "title", "", "heading for the rendered output")

	return cmd
}

func resolveSnapshot(cmd *cobra.Command, app *app) (application.Snapshot, error) {
	if _, err := app.resolver.Resolve(cmd.Context()); err != nil {
		return application.Snapshot{}, fmt.Errorf("resolve version state: %w", err)
	}

	return app.resolver.Snapshot()
}

func writeSnapshotOutput(cmd *cobra.Command, app *app, snapshot application.Snapshot, title string, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(snapshot)
	}

	rendered, err := app.renderer(snapshot, versionstate.RenderOptions{Title: title})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
