package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexiusacademia/rccalc/internal/diagram"
	"github.com/alexiusacademia/rccalc/internal/section"
	"github.com/alexiusacademia/rccalc/internal/serviceability"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	deflSpan    float64
	deflLoad    float64
	deflPoint   float64
	deflEI      float64
	deflEc      float64
	deflShape   string
	deflWidth   float64
	deflHeight  float64
	deflFlangeB float64
	deflFlangeT float64
	deflLimit   float64
	deflOutput  string
	deflCurve   bool
)

var deflectionCmd = &cobra.Command{
	Use:   "deflection",
	Short: "Midspan deflection of a simply supported beam",
	Long: `Calculate the elastic midspan deflection of a simply supported beam.

  uniform load   f = 5·w·l⁴/(384·EI)
  point load     f = P·l³/(48·EI)

Give EI directly with --ei, or give --ec and a gross section
(--shape rect or t) to use Ec·I. The result is checked against l/limit.

Examples:
  rccalc deflection --span 6000 --load 15 --ei 2e13
  rccalc deflection --span 6000 --point 50 --ec 3e4 --shape t --width 200 --height 500 \
      --flange-width 600 --flange-thickness 100 -o defl.png
  rccalc deflection --span 6000 --load 15 --ei 2e13 --curve`,
	RunE: runDeflection,
}

func init() {
	rootCmd.AddCommand(deflectionCmd)

	f := deflectionCmd.Flags()
	f.Float64VarP(&deflSpan, "span", "l", 0, "Span l (mm) [required]")
	f.Float64VarP(&deflLoad, "load", "w", 0, "Uniform load w (kN/m)")
	f.Float64VarP(&deflPoint, "point", "P", 0, "Midspan point load P (kN)")
	f.Float64Var(&deflEI, "ei", 0, "Flexural stiffness EI (N·mm²)")
	f.Float64Var(&deflEc, "ec", 3e4, "Concrete modulus Ec (MPa), used with --shape")
	f.StringVar(&deflShape, "shape", "rect", "Gross section shape for I: rect or t")
	f.Float64VarP(&deflWidth, "width", "b", 0, "Web width b (mm)")
	f.Float64Var(&deflHeight, "height", 0, "Total depth h (mm)")
	f.Float64Var(&deflFlangeB, "flange-width", 0, "Flange width bf (mm), t shape only")
	f.Float64Var(&deflFlangeT, "flange-thickness", 0, "Flange thickness hf (mm), t shape only")
	f.Float64Var(&deflLimit, "limit", 200, "Deflection limit ratio, f <= l/limit")
	f.StringVarP(&deflOutput, "output", "o", "", "Save the elastic curve plot (png, svg or pdf)")
	f.BoolVar(&deflCurve, "curve", false, "Print the elastic curve as a terminal chart")

	deflectionCmd.MarkFlagRequired("span")
}

func stiffness() (float64, error) {
	if deflEI > 0 {
		return deflEI, nil
	}

	var shape section.Shape
	switch strings.ToLower(deflShape) {
	case "rect", "rectangle":
		shape = section.Rectangle(deflWidth, deflHeight)
	case "t", "tee":
		shape = section.TSection(deflWidth, deflHeight, deflFlangeB, deflFlangeT)
	default:
		return 0, fmt.Errorf("unknown shape %q, want rect or t", deflShape)
	}
	if err := shape.Validate(); err != nil {
		return 0, fmt.Errorf("give --ei or a valid section: %w", err)
	}

	i := shape.SecondMoment()
	logger.Debug("gross section", zap.Float64("area", shape.Area()), zap.Float64("I", i))
	return deflEc * i, nil
}

func runDeflection(cmd *cobra.Command, args []string) error {
	if (deflLoad > 0) == (deflPoint > 0) {
		return errors.New("give exactly one of --load or --point")
	}
	ei, err := stiffness()
	if err != nil {
		return err
	}

	plot := diagram.DeflectionPlotData{Span: deflSpan, EI: ei, Load: deflLoad, LimitRatio: deflLimit}
	var f float64
	if deflPoint > 0 {
		plot.Load, plot.PointLoad = deflPoint*1e3, true
		f, err = serviceability.DeflectionPoint(plot.Load, deflSpan, ei)
	} else {
		f, err = serviceability.DeflectionUniform(deflLoad, deflSpan, ei)
	}
	if err != nil {
		return err
	}
	ok := serviceability.CheckDeflectionLimit(f, deflSpan, deflLimit)

	out := cmd.OutOrStdout()
	printTitle(out, "BEAM DEFLECTION")

	printHeading(out, "INPUT DATA:")
	w := newTable(out)
	fmt.Fprintf(w, "  Span (l):\t%.0f mm\n", deflSpan)
	if plot.PointLoad {
		fmt.Fprintf(w, "  Point load (P):\t%.2f kN\n", deflPoint)
	} else {
		fmt.Fprintf(w, "  Uniform load (w):\t%.2f kN/m\n", deflLoad)
	}
	fmt.Fprintf(w, "  EI:\t%.4g N·mm²\n", ei)
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "CHECK:")
	w = newTable(out)
	fmt.Fprintf(w, "  Allowable l/%.0f:\t%.2f mm\n", deflLimit, deflSpan/deflLimit)
	fmt.Fprintf(w, "  Midspan deflection:\t%.2f mm %s\n", f, check(ok))
	w.Flush()
	fmt.Fprintln(out)

	printBox(out, fmt.Sprintf("DEFLECTION f = %.2f mm", f))

	if deflCurve {
		chart, err := diagram.DrawDeflectionCurve(plot, 61)
		if err != nil {
			return err
		}
		fmt.Fprint(out, chart)
	}

	if deflOutput != "" {
		if err := diagram.ExportDeflectionCurve(plot, deflOutput); err != nil {
			return fmt.Errorf("export deflection curve: %w", err)
		}
		logger.Info("deflection plot written", zap.String("path", deflOutput))
		fmt.Fprintf(out, "  Elastic curve saved to %s\n", deflOutput)
	}
	return nil
}
