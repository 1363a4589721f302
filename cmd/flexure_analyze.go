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
	analyzeWidth  float64
	analyzeHeight float64
	analyzeCover  float64
	analyzeFc     float64
	analyzeFy     float64
	analyzeAs     float64

	analyzeDiagram bool
	analyzeOutput  string
)

var flexureAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze moment capacity of a singly reinforced beam",
	Long: `Calculate the moment capacity Mu = fy·As·(h0 - x/2) of a singly
reinforced rectangular beam given the tension steel area As.

The compression depth is x = fy·As/(α1·fc·b). The section is
classified against ξb from the active profile and ρ is checked
against ρmin and ρmax.

Examples:
  # 200x500 beam, C30 (fc = 14.3), HRB400 (fy = 360), 4-20 bars
  rccalc flexure analyze --width 200 --height 500 --cover 40 --fc 14.3 --fy 360 --as 1256

  # Print the section diagram and save a plot
  rccalc flexure analyze -b 200 --height 500 --as 1256 --diagram -o section.png`,
	RunE: runFlexureAnalyze,
}

func init() {
	flexureCmd.AddCommand(flexureAnalyzeCmd)

	flexureAnalyzeCmd.Flags().Float64VarP(&analyzeWidth, "width", "b", 0, "Beam width b (mm) [required]")
	flexureAnalyzeCmd.Flags().Float64Var(&analyzeHeight, "height", 0, "Beam total depth h (mm) [required]")
	flexureAnalyzeCmd.Flags().Float64VarP(&analyzeCover, "cover", "c", 40, "Cover to tension steel centroid as (mm)")
	flexureAnalyzeCmd.Flags().Float64Var(&analyzeFc, "fc", 14.3, "Concrete design compressive strength fc (MPa)")
	flexureAnalyzeCmd.Flags().Float64Var(&analyzeFy, "fy", 360, "Steel design yield strength fy (MPa)")
	flexureAnalyzeCmd.Flags().Float64VarP(&analyzeAs, "as", "a", 0, "Tension steel area As (mm²) [required]")
	flexureAnalyzeCmd.Flags().BoolVar(&analyzeDiagram, "diagram", false, "Print an ASCII section diagram")
	flexureAnalyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Save a section plot (png, svg or pdf)")

	flexureAnalyzeCmd.MarkFlagRequired("width")
	flexureAnalyzeCmd.MarkFlagRequired("height")
	flexureAnalyzeCmd.MarkFlagRequired("as")
}

func runFlexureAnalyze(cmd *cobra.Command, args []string) error {
	g, err := section.NewGeometry(analyzeWidth, analyzeHeight, analyzeCover, 0)
	if err != nil {
		return err
	}
	m := section.Material{Fc: analyzeFc, Fy: analyzeFy}
	p, err := applyGrades(&m)
	if err != nil {
		return err
	}
	b := flexure.NewSinglyReinforced(g, m, p)

	result, err := b.Analyze(analyzeAs)
	if err != nil {
		return err
	}
	logger.Debug("flexure analysis",
		zap.Float64("x", result.X),
		zap.Float64("xi", result.Xi),
		zap.Float64("mu", result.Mu))

	out := cmd.OutOrStdout()
	printTitle(out, "SINGLY REINFORCED BEAM ANALYSIS - "+p.Name)

	printHeading(out, "INPUT DATA:")
	w := newTable(out)
	fmt.Fprintf(w, "  Beam Width (b):\t%.0f mm\n", g.B)
	fmt.Fprintf(w, "  Beam Depth (h):\t%.0f mm\n", g.H)
	fmt.Fprintf(w, "  Effective Depth (h0):\t%.0f mm\n", g.H0)
	fmt.Fprintf(w, "  fc:\t%.1f MPa\n", m.Fc)
	fmt.Fprintf(w, "  fy:\t%.1f MPa\n", m.Fy)
	fmt.Fprintf(w, "  Reinforcement (As):\t%.2f mm²\n", analyzeAs)
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "REINFORCEMENT RATIOS:")
	w = newTable(out)
	fmt.Fprintf(w, "  ρ_min:\t%.4f\n", result.RhoMin)
	fmt.Fprintf(w, "  ρ_max:\t%.4f\n", result.RhoMax)
	fmt.Fprintf(w, "  ρ_actual:\t%.5f %s\n", result.Rho, check(result.MeetsMinReinf && result.MeetsMaxReinf))
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "COMPRESSION ZONE:")
	w = newTable(out)
	fmt.Fprintf(w, "  α1:\t%.2f\n", p.Alpha1)
	fmt.Fprintf(w, "  Compression depth (x):\t%.2f mm\n", result.X)
	fmt.Fprintf(w, "  ξ = x/h0:\t%.4f\n", result.Xi)
	fmt.Fprintf(w, "  ξb:\t%.3f\n", result.XiB)
	w.Flush()
	fmt.Fprintln(out)

	printBox(out, fmt.Sprintf("MOMENT CAPACITY Mu = %.2f kN·m", result.Mu/1e6))
	printWarnings(out, result.Warnings)
	printStatus(out, result.Message)

	data := diagram.SectionDiagramData{
		Width:            g.B,
		Height:           g.H,
		H0:               g.H0,
		X:                result.X,
		Xi:               result.Xi,
		XiB:              result.XiB,
		Alpha1:           p.Alpha1,
		TensionSteelArea: analyzeAs,
		Fc:               m.Fc,
		Fy:               m.Fy,
		OverReinforced:   result.OverReinforced,
	}
	if analyzeDiagram {
		fmt.Fprint(out, diagram.DrawASCIISectionDiagram(data))
		fmt.Fprint(out, diagram.DrawStressBlock(data))
	}
	if analyzeOutput != "" {
		if err := diagram.ExportSectionDiagram(data, section.Shape{}, analyzeOutput); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		logger.Info("section plot written", zap.String("path", analyzeOutput))
		fmt.Fprintf(out, "  Diagram saved to %s\n", analyzeOutput)
	}
	return nil
}
