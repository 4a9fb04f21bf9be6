package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print the version number",
	Long:              `Display the current version of the finplan CLI.`,
	PersistentPreRunE: skipConfig,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "finplan version %s\n", version)
		fmt.Fprintln(cmd.OutOrStdout(), "A personal finance tracker and investment advisor")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// skipConfig replaces the root config hook for commands that must work
// without a valid configuration.
func skipConfig(cmd *cobra.Command, args []string) error { return nil }
