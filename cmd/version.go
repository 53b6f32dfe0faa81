package cmd

import (
	"fmt"

	"github.com/dxltools/dxl-complete/internal/version"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the dxl-complete version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dxl-complete v%s\n", version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
