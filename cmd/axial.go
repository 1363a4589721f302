package cmd

import (
	"fmt"

	"github.com/alexiusacademia/rccalc/internal/axial"
	"github.com/alexiusacademia/rccalc/internal/diagram"
	"github.com/alexiusacademia/rccalc/internal/section"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	axialWidth   float64
	axialHeight  float64
	axialFc      float64
	axialFy      float64
	axialFyPrime float64
	axialAsPrime float64
	axialL0      float64
	axialN       float64
	axialPlot    string
)

var axialCmd = &cobra.Command{
	Use:   "axial",
	Short: "Axial capacity of a tied rectangular column",
	Long: `Check a rectangular column under axial compression.

  Nu = 0.9·φ·(fc·A + f'y·As')

φ is looked up on the stability curve of the active profile from
l0/b, b being the smaller of --width and --height. φ = 1.0 up to the curve threshold.
When As'/A exceeds 3% the concrete area is taken net of As'.
The tension capacity fy·As' is reported alongside.

Examples:
  rccalc axial --width 400 --height 400 --as-prime 1964 --l0 4000 --load 2500
  rccalc axial -b 300 --height 300 --as-prime 1256 --l0 6000 --plot phi.png`,
	RunE: runAxial,
}

func init() {
	rootCmd.AddCommand(axialCmd)

	axialCmd.Flags().Float64VarP(&axialWidth, "width", "b", 0, "Column side b (mm) [required]")
	axialCmd.Flags().Float64Var(&axialHeight, "height", 0, "Column side h (mm) [required]")
	axialCmd.Flags().Float64Var(&axialFc, "fc", 14.3, "Concrete design compressive strength fc (MPa)")
	axialCmd.Flags().Float64Var(&axialFy, "fy", 360, "Steel design yield strength fy (MPa)")
	axialCmd.Flags().Float64Var(&axialFyPrime, "fy-prime", 0, "Compression yield strength f'y (MPa), defaults to fy")
	axialCmd.Flags().Float64Var(&axialAsPrime, "as-prime", 0, "Total longitudinal steel As' (mm²)")
	axialCmd.Flags().Float64Var(&axialL0, "l0", 0, "Effective length l0 (mm)")
	axialCmd.Flags().Float64VarP(&axialN, "load", "N", 0, "Design axial force N (kN)")
	axialCmd.Flags().StringVar(&axialPlot, "plot", "", "Save the stability curve plot (png, svg or pdf)")

	axialCmd.MarkFlagRequired("width")
	axialCmd.MarkFlagRequired("height")
}

func runAxial(cmd *cobra.Command, args []string) error {
	col := &axial.Column{
		B:        axialWidth,
		H:        axialHeight,
		Material: section.Material{Fc: axialFc, Fy: axialFy, FyPrime: axialFyPrime},
		AsPrime:  axialAsPrime,
		Profile:  activeProfile,
	}
	result, err := col.Analyze(axialL0, axialN*1e3)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printTitle(out, "AXIAL CAPACITY - "+activeProfile.Name)

	printHeading(out, "INPUT DATA:")
	w := newTable(out)
	fmt.Fprintf(w, "  b × h:\t%.0f × %.0f mm\n", axialWidth, axialHeight)
	fmt.Fprintf(w, "  fc / f'y:\t%.1f / %.0f MPa\n", axialFc, col.Material.CompressionYield())
	fmt.Fprintf(w, "  As':\t%.0f mm²\n", axialAsPrime)
	fmt.Fprintf(w, "  l0:\t%.0f mm\n", axialL0)
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "STABILITY:")
	w = newTable(out)
	fmt.Fprintf(w, "  l0/b:\t%.2f\n", result.Slenderness)
	fmt.Fprintf(w, "  φ:\t%.3f\n", result.Phi)
	fmt.Fprintf(w, "  ρ':\t%.4f\n", result.RhoPrime)
	if result.NetArea {
		fmt.Fprintf(w, "  Concrete area (net):\t%.0f mm²\n", result.Area)
	} else {
		fmt.Fprintf(w, "  Concrete area:\t%.0f mm²\n", result.Area)
	}
	w.Flush()
	fmt.Fprintln(out)

	printBox(out, fmt.Sprintf("Nu = %.1f kN   Nt = %.1f kN", result.Nu/1e3, result.Nt/1e3))
	printWarnings(out, result.Warnings)
	if axialN > 0 {
		printStatus(out, result.Message)
	}

	if axialPlot != "" {
		if err := diagram.ExportStabilityCurve(activeProfile.Stability, axialPlot); err != nil {
			return fmt.Errorf("export stability curve: %w", err)
		}
		logger.Info("stability curve written", zap.String("path", axialPlot))
		fmt.Fprintf(out, "  Stability curve saved to %s\n", axialPlot)
	}
	return nil
}
