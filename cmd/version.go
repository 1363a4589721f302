package cmd

import (
	"fmt"

	"github.com/alexiusacademia/rccalc/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rccalc",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "rccalc v%s\n", version.Version)
		fmt.Fprintf(out, "Built %s from %s\n", version.BuildTime, version.GitCommit)
		fmt.Fprintf(out, "Default profile: %s\n", version.DefaultProfile)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
