package cmd

import (
	"fmt"

	"github.com/alexiusacademia/rccalc/internal/flexure"
	"github.com/alexiusacademia/rccalc/internal/section"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	designWidth  float64
	designHeight float64
	designCover  float64
	designFc     float64
	designFy     float64
	designMoment float64
)

var flexureDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Design tension steel for a singly reinforced beam",
	Long: `Calculate the required tension steel As for a design moment M.

The compression depth solves M = α1·fc·b·x·(h0 - x/2), then
As = α1·fc·b·x/fy, raised to ρmin·b·h0 when that governs.

Examples:
  # 200x500 beam carrying M = 150 kN·m
  rccalc flexure design --width 200 --height 500 --cover 40 --moment 150`,
	RunE: runFlexureDesign,
}

func init() {
	flexureCmd.AddCommand(flexureDesignCmd)

	flexureDesignCmd.Flags().Float64VarP(&designWidth, "width", "b", 0, "Beam width b (mm) [required]")
	flexureDesignCmd.Flags().Float64Var(&designHeight, "height", 0, "Beam total depth h (mm) [required]")
	flexureDesignCmd.Flags().Float64VarP(&designCover, "cover", "c", 40, "Cover to tension steel centroid as (mm)")
	flexureDesignCmd.Flags().Float64Var(&designFc, "fc", 14.3, "Concrete design compressive strength fc (MPa)")
	flexureDesignCmd.Flags().Float64Var(&designFy, "fy", 360, "Steel design yield strength fy (MPa)")
	flexureDesignCmd.Flags().Float64VarP(&designMoment, "moment", "m", 0, "Design moment M (kN·m) [required]")

	flexureDesignCmd.MarkFlagRequired("width")
	flexureDesignCmd.MarkFlagRequired("height")
	flexureDesignCmd.MarkFlagRequired("moment")
}

func runFlexureDesign(cmd *cobra.Command, args []string) error {
	g, err := section.NewGeometry(designWidth, designHeight, designCover, 0)
	if err != nil {
		return err
	}
	m := section.Material{Fc: designFc, Fy: designFy}
	p, err := applyGrades(&m)
	if err != nil {
		return err
	}
	b := flexure.NewSinglyReinforced(g, m, p)

	result, err := b.Design(designMoment * 1e6)
	if err != nil {
		return err
	}
	logger.Debug("flexure design",
		zap.Float64("x", result.X),
		zap.Float64("as_required", result.AsRequired),
		zap.Bool("adequate", result.IsAdequate))

	out := cmd.OutOrStdout()
	printTitle(out, "SINGLY REINFORCED BEAM DESIGN - "+p.Name)

	printHeading(out, "INPUT DATA:")
	w := newTable(out)
	fmt.Fprintf(w, "  Beam Width (b):\t%.0f mm\n", g.B)
	fmt.Fprintf(w, "  Beam Depth (h):\t%.0f mm\n", g.H)
	fmt.Fprintf(w, "  Effective Depth (h0):\t%.0f mm\n", g.H0)
	fmt.Fprintf(w, "  fc:\t%.1f MPa\n", m.Fc)
	fmt.Fprintf(w, "  fy:\t%.1f MPa\n", m.Fy)
	fmt.Fprintf(w, "  Design Moment (M):\t%.2f kN·m\n", designMoment)
	w.Flush()
	fmt.Fprintln(out)

	if result.X > 0 {
		printHeading(out, "COMPRESSION ZONE:")
		w = newTable(out)
		fmt.Fprintf(w, "  Compression depth (x):\t%.2f mm\n", result.X)
		fmt.Fprintf(w, "  ξ = x/h0:\t%.4f\n", result.Xi)
		fmt.Fprintf(w, "  ξb:\t%.3f %s\n", result.XiB, check(!result.OverReinforced))
		w.Flush()
		fmt.Fprintln(out)

		printHeading(out, "STEEL AREA:")
		w = newTable(out)
		fmt.Fprintf(w, "  As (equilibrium):\t%.2f mm²\n", result.AsCalculated)
		fmt.Fprintf(w, "  As,min = ρmin·b·h0:\t%.2f mm²\n", result.AsMin)
		w.Flush()
		fmt.Fprintln(out)

		printBox(out, fmt.Sprintf("REQUIRED As = %.2f mm²", result.AsRequired))
	}

	printWarnings(out, result.Warnings)
	printStatus(out, result.Message)
	return nil
}
