// Package cli implements the matchd command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "matchd",
	Short: "Evaluate declarative sequence expectations against JSON data",
	Long: `matchd evaluates a declaratively configured set of expectations
(size, per-item predicates, ordering, sortedness, uniqueness,
exhaustiveness) against an observed JSON sequence and reports a verdict,
a satisfaction score and a per-item diagnostic table.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the matchd version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "matchd", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
}

// Execute runs the CLI with the build version set via ldflags.
func Execute(buildVersion string) error {
	if buildVersion != "" {
		version = buildVersion
	}
	return rootCmd.Execute()
}
