package cmd

import (
	"github.com/spf13/cobra"

	"github.com/endorses/telnum/internal/pkg/output"
	"github.com/endorses/telnum/internal/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.WriteJSON(cmd.OutOrStdout(), version.Get())
	},
}
