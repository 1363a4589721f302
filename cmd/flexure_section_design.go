package cmd

import (
	"fmt"

	"github.com/alexiusacademia/rccalc/internal/flexure"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	sectionDesignFile   string
	sectionDesignMoment float64
)

var flexureSectionDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Required tension steel for a polygonal section",
	Long: `Calculate the tension steel a section defined in a YAML file needs
for a design moment M.

Layers below the gross centroid are scaled together, keeping their
proportions; layers above it are kept as defined. The result is raised
to ρmin·b·h0, b being the width at h0.

Examples:
  rccalc flexure section design --file t-beam.yaml --moment 250`,
	RunE: runFlexureSectionDesign,
}

func init() {
	flexureSectionCmd.AddCommand(flexureSectionDesignCmd)

	flexureSectionDesignCmd.Flags().StringVarP(&sectionDesignFile, "file", "f", "", "Path to section YAML file [required]")
	flexureSectionDesignCmd.Flags().Float64VarP(&sectionDesignMoment, "moment", "m", 0, "Design moment M (kN·m) [required]")
	flexureSectionDesignCmd.MarkFlagRequired("file")
	flexureSectionDesignCmd.MarkFlagRequired("moment")
}

func runFlexureSectionDesign(cmd *cobra.Command, args []string) error {
	d, m, p, err := loadSection(sectionDesignFile)
	if err != nil {
		return err
	}
	result, err := flexure.NewPolygonSection(d, m, p).Design(sectionDesignMoment * 1e6)
	if err != nil {
		return err
	}
	logger.Debug("section design",
		zap.Float64("as_required", result.AsRequired),
		zap.Float64("scale", result.Scale),
		zap.Bool("adequate", result.IsAdequate))

	out := cmd.OutOrStdout()
	printTitle(out, "SECTION DESIGN - "+p.Name)

	printHeading(out, "INPUT DATA:")
	w := newTable(out)
	fmt.Fprintf(w, "  Name:\t%s\n", d.Name)
	fmt.Fprintf(w, "  fc / fy:\t%.1f / %.0f MPa\n", m.Fc, m.Fy)
	fmt.Fprintf(w, "  Design Moment (M):\t%.2f kN·m\n", sectionDesignMoment)
	fmt.Fprintf(w, "  Tension steel in file:\t%.2f mm²\n", result.AsProvided)
	w.Flush()
	fmt.Fprintln(out)

	if result.AsRequired > 0 {
		printHeading(out, "STEEL AREA:")
		w = newTable(out)
		fmt.Fprintf(w, "  As,min = ρmin·b·h0:\t%.2f mm²\n", result.AsMin)
		fmt.Fprintf(w, "  Scale on file layers:\t%.3f\n", result.Scale)
		fmt.Fprintf(w, "  ξ / ξb:\t%.4f / %.3f %s\n", result.Analysis.Xi, result.Analysis.XiB, check(!result.Analysis.OverReinforced))
		w.Flush()
		fmt.Fprintln(out)

		printLayers(out, result.Analysis.Layers)
		printBox(out, fmt.Sprintf("REQUIRED As = %.2f mm²", result.AsRequired))
		printWarnings(out, result.Analysis.Warnings)
	}
	printStatus(out, result.Message)
	return nil
}
