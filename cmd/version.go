package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display version information for rdgen.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rdgen version: %s\n", appVersion)
		fmt.Fprintf(cmd.OutOrStdout(), "Git commit: %s\n", appGitCommit)
		fmt.Fprintf(cmd.OutOrStdout(), "Build time: %s\n", appBuildTime)
	},
}
