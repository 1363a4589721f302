package cmd

import (
	"github.com/spf13/cobra"
)

var flexureDoublyCmd = &cobra.Command{
	Use:   "doubly",
	Short: "Doubly reinforced rectangular beam design and analysis",
	Long: `Design and analyze rectangular beams with tension steel As and
compression steel As'.

Use when the design moment exceeds the singly reinforced limit
α1·fc·b·h0²·ξb·(1 - 0.5ξb).

Subcommands:
  analyze  - Moment capacity for given As and As'
  design   - Required As and As' for a design moment`,
}

func init() {
	flexureCmd.AddCommand(flexureDoublyCmd)
}
