package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"spend-insights/internal/buildinfo"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "spend-insights %s\n", buildinfo.String())
			return err
		},
	}
}
