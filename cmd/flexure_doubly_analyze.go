package cmd

import (
	"fmt"

	"github.com/alexiusacademia/rccalc/internal/diagram"
	"github.com/alexiusacademia/rccalc/internal/flexure"
	"github.com/alexiusacademia/rccalc/internal/section"
	"github.com/spf13/cobra"
)

var (
	doublyWidth      float64
	doublyHeight     float64
	doublyCover      float64
	doublyCoverPrime float64
	doublyFc         float64
	doublyFy         float64
	doublyFyPrime    float64
	doublyAs         float64
	doublyAsPrime    float64
	doublyDiagram    bool
)

var flexureDoublyAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a doubly reinforced beam",
	Long: `Calculate the moment capacity of a rectangular beam with tension
steel As and compression steel As'.

When x >= 2a's the compression steel yields and
  Mu = α1·fc·b·x·(h0 - x/2) + f'y·As'·(h0 - a's)
otherwise moments are taken about the compression steel:
  Mu = fy·As·(h0 - a's)

Examples:
  rccalc flexure doubly analyze --width 250 --height 600 --as 2945 --as-prime 628 --cover-prime 40`,
	RunE: runFlexureDoublyAnalyze,
}

func init() {
	flexureDoublyCmd.AddCommand(flexureDoublyAnalyzeCmd)

	flexureDoublyAnalyzeCmd.Flags().Float64VarP(&doublyWidth, "width", "b", 0, "Beam width b (mm) [required]")
	flexureDoublyAnalyzeCmd.Flags().Float64Var(&doublyHeight, "height", 0, "Beam total depth h (mm) [required]")
	flexureDoublyAnalyzeCmd.Flags().Float64VarP(&doublyCover, "cover", "c", 40, "Cover to tension steel centroid as (mm)")
	flexureDoublyAnalyzeCmd.Flags().Float64Var(&doublyCoverPrime, "cover-prime", 40, "Cover to compression steel centroid a's (mm)")
	flexureDoublyAnalyzeCmd.Flags().Float64Var(&doublyFc, "fc", 14.3, "Concrete design compressive strength fc (MPa)")
	flexureDoublyAnalyzeCmd.Flags().Float64Var(&doublyFy, "fy", 360, "Tension steel yield strength fy (MPa)")
	flexureDoublyAnalyzeCmd.Flags().Float64Var(&doublyFyPrime, "fy-prime", 0, "Compression steel yield strength f'y (MPa), defaults to fy")
	flexureDoublyAnalyzeCmd.Flags().Float64VarP(&doublyAs, "as", "a", 0, "Tension steel area As (mm²) [required]")
	flexureDoublyAnalyzeCmd.Flags().Float64Var(&doublyAsPrime, "as-prime", 0, "Compression steel area As' (mm²)")
	flexureDoublyAnalyzeCmd.Flags().BoolVar(&doublyDiagram, "diagram", false, "Print an ASCII section diagram")

	flexureDoublyAnalyzeCmd.MarkFlagRequired("width")
	flexureDoublyAnalyzeCmd.MarkFlagRequired("height")
	flexureDoublyAnalyzeCmd.MarkFlagRequired("as")
}

func runFlexureDoublyAnalyze(cmd *cobra.Command, args []string) error {
	g, err := section.NewGeometry(doublyWidth, doublyHeight, doublyCover, 0)
	if err != nil {
		return err
	}
	m := section.Material{Fc: doublyFc, Fy: doublyFy, FyPrime: doublyFyPrime}
	r := section.Reinforcement{As: doublyAs, AsPrime: doublyAsPrime, CoverPrime: doublyCoverPrime}

	p, err := applyGrades(&m)
	if err != nil {
		return err
	}
	result, err := flexure.NewDoublyReinforced(g, m, p).Analyze(r)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printTitle(out, "DOUBLY REINFORCED BEAM ANALYSIS - "+p.Name)

	printHeading(out, "INPUT DATA:")
	w := newTable(out)
	fmt.Fprintf(w, "  Beam Width (b):\t%.0f mm\n", g.B)
	fmt.Fprintf(w, "  Beam Depth (h):\t%.0f mm\n", g.H)
	fmt.Fprintf(w, "  Effective Depth (h0):\t%.0f mm\n", g.H0)
	fmt.Fprintf(w, "  a's:\t%.0f mm\n", r.CoverPrime)
	fmt.Fprintf(w, "  fc / fy / f'y:\t%.1f / %.0f / %.0f MPa\n", m.Fc, m.Fy, m.CompressionYield())
	fmt.Fprintf(w, "  As / As':\t%.0f / %.0f mm²\n", r.As, r.AsPrime)
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "COMPRESSION ZONE:")
	w = newTable(out)
	fmt.Fprintf(w, "  Compression depth (x):\t%.2f mm\n", result.X)
	fmt.Fprintf(w, "  2a's:\t%.2f mm\n", 2*r.CoverPrime)
	fmt.Fprintf(w, "  ξ / ξb:\t%.4f / %.3f %s\n", result.Xi, result.XiB, check(!result.OverReinforced))
	fmt.Fprintf(w, "  ρ / ρ':\t%.5f / %.5f\n", result.Rho, result.RhoComp)
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "MOMENT COMPONENTS:")
	w = newTable(out)
	if result.CompressionSteelEffective || result.MuConcrete > 0 {
		fmt.Fprintf(w, "  Concrete couple:\t%.2f kN·m\n", result.MuConcrete/1e6)
		fmt.Fprintf(w, "  Steel couple:\t%.2f kN·m\n", result.MuSteel/1e6)
	} else {
		fmt.Fprintf(w, "  fy·As·(h0 - a's):\t%.2f kN·m\n", result.Mu/1e6)
	}
	w.Flush()
	fmt.Fprintln(out)

	printBox(out, fmt.Sprintf("MOMENT CAPACITY Mu = %.2f kN·m", result.Mu/1e6))
	printWarnings(out, result.Warnings)
	printStatus(out, result.Message)

	if doublyDiagram {
		fmt.Fprint(out, diagram.DrawASCIISectionDiagram(diagram.SectionDiagramData{
			Width:            g.B,
			Height:           g.H,
			H0:               g.H0,
			X:                result.X,
			Xi:               result.Xi,
			XiB:              result.XiB,
			Alpha1:           p.Alpha1,
			TensionSteelArea: r.As,
			CompSteelArea:    r.AsPrime,
			CompSteelDepth:   r.CoverPrime,
			Fc:               m.Fc,
			Fy:               m.Fy,
			OverReinforced:   result.OverReinforced,
			IsDoubly:         r.AsPrime > 0,
		}))
	}
	return nil
}
