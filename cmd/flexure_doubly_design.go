package cmd

import (
	"fmt"

	"github.com/alexiusacademia/rccalc/internal/diagram"
	"github.com/alexiusacademia/rccalc/internal/flexure"
	"github.com/alexiusacademia/rccalc/internal/section"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	doublyDesignWidth      float64
	doublyDesignHeight     float64
	doublyDesignCover      float64
	doublyDesignCoverPrime float64
	doublyDesignFc         float64
	doublyDesignFy         float64
	doublyDesignFyPrime    float64
	doublyDesignMoment     float64
)

var flexureDoublyDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Design tension and compression steel for a doubly reinforced beam",
	Long: `Calculate the required tension steel As and compression steel As'
for a design moment M.

If M fits a singly reinforced section no compression steel is used.
Otherwise x is set to ξb·h0 and
  As' = (M - α1·fc·b·h0²·ξb·(1 - 0.5ξb)) / (f'y·(h0 - a's))
  As  = (α1·fc·b·ξb·h0 + f'y·As') / fy

Examples:
  # 200x500 beam carrying M = 300 kN·m
  rccalc flexure doubly design --width 200 --height 500 --moment 300 --cover-prime 40`,
	RunE: runFlexureDoublyDesign,
}

func init() {
	flexureDoublyCmd.AddCommand(flexureDoublyDesignCmd)

	f := flexureDoublyDesignCmd.Flags()
	f.Float64VarP(&doublyDesignWidth, "width", "b", 0, "Beam width b (mm) [required]")
	f.Float64Var(&doublyDesignHeight, "height", 0, "Beam total depth h (mm) [required]")
	f.Float64VarP(&doublyDesignCover, "cover", "c", 40, "Cover to tension steel centroid as (mm)")
	f.Float64Var(&doublyDesignCoverPrime, "cover-prime", 40, "Cover to compression steel centroid a's (mm)")
	f.Float64Var(&doublyDesignFc, "fc", 14.3, "Concrete design compressive strength fc (MPa)")
	f.Float64Var(&doublyDesignFy, "fy", 360, "Tension steel yield strength fy (MPa)")
	f.Float64Var(&doublyDesignFyPrime, "fy-prime", 0, "Compression steel yield strength f'y (MPa), defaults to fy")
	f.Float64VarP(&doublyDesignMoment, "moment", "m", 0, "Design moment M (kN·m) [required]")

	flexureDoublyDesignCmd.MarkFlagRequired("width")
	flexureDoublyDesignCmd.MarkFlagRequired("height")
	flexureDoublyDesignCmd.MarkFlagRequired("moment")
}

func runFlexureDoublyDesign(cmd *cobra.Command, args []string) error {
	g, err := section.NewGeometry(doublyDesignWidth, doublyDesignHeight, doublyDesignCover, 0)
	if err != nil {
		return err
	}
	m := section.Material{Fc: doublyDesignFc, Fy: doublyDesignFy, FyPrime: doublyDesignFyPrime}
	p, err := applyGrades(&m)
	if err != nil {
		return err
	}

	result, err := flexure.NewDoublyReinforced(g, m, p).Design(doublyDesignMoment*1e6, doublyDesignCoverPrime)
	if err != nil {
		return err
	}
	logger.Debug("doubly design",
		zap.Bool("compression_steel", result.RequiresCompSteel),
		zap.Float64("as", result.As),
		zap.Float64("as_prime", result.AsPrime))

	out := cmd.OutOrStdout()
	printTitle(out, "DOUBLY REINFORCED BEAM DESIGN - "+p.Name)

	printHeading(out, "INPUT DATA:")
	w := newTable(out)
	fmt.Fprintf(w, "  Beam Width (b):\t%.0f mm\n", g.B)
	fmt.Fprintf(w, "  Beam Depth (h):\t%.0f mm\n", g.H)
	fmt.Fprintf(w, "  Effective Depth (h0):\t%.0f mm\n", g.H0)
	fmt.Fprintf(w, "  a's:\t%.0f mm\n", doublyDesignCoverPrime)
	fmt.Fprintf(w, "  fc / fy / f'y:\t%.1f / %.0f / %.0f MPa\n", m.Fc, m.Fy, m.CompressionYield())
	fmt.Fprintf(w, "  Design Moment (M):\t%.2f kN·m\n", doublyDesignMoment)
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "DESIGN DETERMINATION:")
	w = newTable(out)
	fmt.Fprintf(w, "  Max M (singly reinforced):\t%.2f kN·m\n", result.MuSinglyMax/1e6)
	if result.RequiresCompSteel {
		fmt.Fprintf(w, "  Design Type:\tDOUBLY REINFORCED REQUIRED\n")
	} else {
		fmt.Fprintf(w, "  Design Type:\tSingly Reinforced Adequate\n")
	}
	fmt.Fprintf(w, "  Compression depth (x):\t%.2f mm\n", result.X)
	fmt.Fprintf(w, "  ξ / ξb:\t%.4f / %.3f\n", result.Xi, result.XiB)
	w.Flush()
	fmt.Fprintln(out)

	if result.IsAdequate {
		lines := []string{fmt.Sprintf("TENSION STEEL      As  = %.2f mm²", result.As)}
		if result.RequiresCompSteel {
			lines = append(lines, fmt.Sprintf("COMPRESSION STEEL  As' = %.2f mm²", result.AsPrime))
		}
		fmt.Fprint(out, diagram.DrawSummaryBox("DESIGN RESULT", lines))
		fmt.Fprintln(out)
	}
	printWarnings(out, result.Warnings)
	printStatus(out, result.Message)
	return nil
}
