package cmd

import (
	"fmt"

	"github.com/alexiusacademia/rccalc/internal/diagram"
	"github.com/alexiusacademia/rccalc/internal/flexure"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	sectionAnalyzeFile   string
	sectionAnalyzeOutput string
)

var flexureSectionAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Moment capacity of a polygonal section",
	Long: `Calculate the moment capacity Mu of a section defined in a YAML file.

The neutral axis depth xn is found from force equilibrium; bars take
σs = Es·εcu·(xn - d)/xn limited to ±fy, and bars inside the block
deduct the concrete they displace.

Examples:
  rccalc flexure section analyze --file t-beam.yaml
  rccalc flexure section analyze -f t-beam.yaml --concrete C30 -o t-beam.png`,
	RunE: runFlexureSectionAnalyze,
}

func init() {
	flexureSectionCmd.AddCommand(flexureSectionAnalyzeCmd)

	flexureSectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeFile, "file", "f", "", "Path to section YAML file [required]")
	flexureSectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeOutput, "output", "o", "", "Save a section plot (png, svg or pdf)")
	flexureSectionAnalyzeCmd.MarkFlagRequired("file")
}

func runFlexureSectionAnalyze(cmd *cobra.Command, args []string) error {
	d, m, p, err := loadSection(sectionAnalyzeFile)
	if err != nil {
		return err
	}
	result, err := flexure.NewPolygonSection(d, m, p).Analyze()
	if err != nil {
		return err
	}
	logger.Debug("section analysis",
		zap.Float64("xn", result.Xn),
		zap.Float64("x", result.X),
		zap.Float64("mu", result.Mu))

	out := cmd.OutOrStdout()
	printTitle(out, "SECTION ANALYSIS - "+p.Name)

	shape := d.Shape()
	printHeading(out, "SECTION:")
	w := newTable(out)
	fmt.Fprintf(w, "  Name:\t%s\n", d.Name)
	fmt.Fprintf(w, "  Height:\t%.0f mm\n", shape.Height())
	fmt.Fprintf(w, "  Gross area:\t%.0f mm²\n", shape.Area())
	fmt.Fprintf(w, "  fc / fy:\t%.1f / %.0f MPa\n", m.Fc, m.Fy)
	fmt.Fprintf(w, "  Effective depth (h0):\t%.1f mm\n", result.H0)
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "COMPRESSION ZONE:")
	w = newTable(out)
	fmt.Fprintf(w, "  Neutral axis (xn):\t%.2f mm\n", result.Xn)
	fmt.Fprintf(w, "  Block depth (x):\t%.2f mm\n", result.X)
	fmt.Fprintf(w, "  Block area:\t%.0f mm²\n", result.CompressionArea)
	fmt.Fprintf(w, "  ξ / ξb:\t%.4f / %.3f %s\n", result.Xi, result.XiB, check(!result.OverReinforced))
	fmt.Fprintf(w, "  Cc / Cs / T:\t%.1f / %.1f / %.1f kN\n", result.Cc/1e3, result.Cs/1e3, result.T/1e3)
	w.Flush()
	fmt.Fprintln(out)

	printLayers(out, result.Layers)

	printBox(out, fmt.Sprintf("MOMENT CAPACITY Mu = %.2f kN·m", result.Mu/1e6))
	printWarnings(out, result.Warnings)
	printStatus(out, result.Message)

	if sectionAnalyzeOutput != "" {
		var tension float64
		for _, l := range result.Layers {
			if l.Force < 0 {
				tension += l.Area
			}
		}
		data := diagram.SectionDiagramData{
			Height:           shape.Height(),
			H0:               result.H0,
			X:                result.X,
			Xi:               result.Xi,
			XiB:              result.XiB,
			Alpha1:           p.Alpha1,
			TensionSteelArea: tension,
			Fc:               m.Fc,
			Fy:               m.Fy,
			OverReinforced:   result.OverReinforced,
		}
		if err := diagram.ExportSectionDiagram(data, shape, sectionAnalyzeOutput); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		logger.Info("section plot written", zap.String("path", sectionAnalyzeOutput))
		fmt.Fprintf(out, "  Diagram saved to %s\n", sectionAnalyzeOutput)
	}
	return nil
}
