package cmd

import (
	"fmt"

	"github.com/bnema/appversion/internal/version"
	"github.com/spf13/cobra"
)

const skipWireAnnotation = "appversion/skip-wire"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Annotations: map[string]string{skipWireAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}
