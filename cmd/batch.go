package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/rccalc/internal/batch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var batchOutput string

var batchCmd = &cobra.Command{
	Use:   "batch <input.xlsx>",
	Short: "Run flexural analyses from a spreadsheet",
	Long: `Analyze every row of the first sheet of an xlsx workbook as a singly
reinforced beam and write the results to a new workbook.

Columns after one header row:
  name, b (mm), h (mm), cover (mm), fc (MPa), fy (MPa), As (mm²), M (kN·m)

M is optional; when given, the row is adequate only if Mu >= M.
Rows that fail are kept in the output with the error in the notes.

Examples:
  rccalc batch beams.xlsx -o results.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "results.xlsx", "Output workbook")
}

func runBatch(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	rows, err := batch.ReadFlexureRows(in)
	if err != nil {
		return err
	}
	results := batch.Run(rows, activeProfile)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.Warn("row failed", zap.Int("line", r.Row.Line), zap.String("name", r.Row.Name), zap.Error(r.Err))
		}
	}

	out, err := os.Create(batchOutput)
	if err != nil {
		return err
	}
	if err := batch.WriteResults(out, results); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", batchOutput, err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	logger.Info("batch complete",
		zap.String("input", args[0]),
		zap.String("output", batchOutput),
		zap.Int("rows", len(results)),
		zap.Int("failed", failed))
	fmt.Fprintf(cmd.OutOrStdout(), "  %d rows analyzed, %d failed. Results saved to %s\n", len(results), failed, batchOutput)
	return nil
}
