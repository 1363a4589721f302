package cmd

import (
	"fmt"

	"github.com/alexiusacademia/rccalc/internal/section"
	"github.com/alexiusacademia/rccalc/internal/shear"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	shearWidth   float64
	shearHeight  float64
	shearCover   float64
	shearFc      float64
	shearFt      float64
	shearFyv     float64
	shearAsv     float64
	shearLegs    int
	shearSpacing float64
	shearAlphaCV float64
	shearLambda  float64
	shearBetaC   float64
	shearV       float64
)

var shearCmd = &cobra.Command{
	Use:   "shear",
	Short: "Shear capacity of a rectangular section",
	Long: `Calculate the shear capacity of a rectangular beam section.

  Vc = αcv·ft·b·h0
  Vs = fyv·n·Asv·h0/s
  Vu = Vc + Vs

αcv comes from the active profile unless --alpha-cv is given. For
members governed by concentrated loads pass the shear span ratio
with --lambda to use αcv = 1.75/(λ + 1).

Examples:
  # Concrete only
  rccalc shear --width 200 --height 500 --ft 1.43

  # Two-leg φ8 stirrups at 150 mm against V = 180 kN
  rccalc shear -b 200 --height 500 --ft 1.43 --fyv 270 --asv 50.3 --legs 2 --spacing 150 --shear 180`,
	RunE: runShear,
}

func init() {
	rootCmd.AddCommand(shearCmd)

	shearCmd.Flags().Float64VarP(&shearWidth, "width", "b", 0, "Beam width b (mm) [required]")
	shearCmd.Flags().Float64Var(&shearHeight, "height", 0, "Beam total depth h (mm) [required]")
	shearCmd.Flags().Float64VarP(&shearCover, "cover", "c", 40, "Cover to tension steel centroid as (mm)")
	shearCmd.Flags().Float64Var(&shearFc, "fc", 14.3, "Concrete design compressive strength fc (MPa)")
	shearCmd.Flags().Float64Var(&shearFt, "ft", 1.43, "Concrete design tensile strength ft (MPa)")
	shearCmd.Flags().Float64Var(&shearFyv, "fyv", 270, "Stirrup yield strength fyv (MPa)")
	shearCmd.Flags().Float64Var(&shearAsv, "asv", 0, "Area of one stirrup leg Asv (mm²)")
	shearCmd.Flags().IntVarP(&shearLegs, "legs", "n", 2, "Number of stirrup legs")
	shearCmd.Flags().Float64VarP(&shearSpacing, "spacing", "s", 0, "Stirrup spacing s (mm)")
	shearCmd.Flags().Float64Var(&shearAlphaCV, "alpha-cv", 0, "Override αcv")
	shearCmd.Flags().Float64Var(&shearLambda, "lambda", 0, "Shear span ratio λ for concentrated loads")
	shearCmd.Flags().Float64Var(&shearBetaC, "beta-c", 1.0, "Concrete strength factor βc for the section limit")
	shearCmd.Flags().Float64VarP(&shearV, "shear", "V", 0, "Design shear V (kN)")

	shearCmd.MarkFlagRequired("width")
	shearCmd.MarkFlagRequired("height")
}

func runShear(cmd *cobra.Command, args []string) error {
	g, err := section.NewGeometry(shearWidth, shearHeight, shearCover, 0)
	if err != nil {
		return err
	}

	alphaCV := shearAlphaCV
	if shearLambda > 0 {
		alphaCV = shear.ConcentratedLoadCoefficient(shearLambda)
		logger.Debug("concentrated load coefficient", zap.Float64("lambda", shearLambda), zap.Float64("alpha_cv", alphaCV))
	}

	in := shear.Input{
		Geometry:      g,
		Material:      section.Material{Fc: shearFc, Ft: shearFt, Fy: shearFyv, Fyv: shearFyv},
		Reinforcement: section.Reinforcement{Asv: shearAsv, Legs: shearLegs, S: shearSpacing},
		AlphaCV:       alphaCV,
		BetaC:         shearBetaC,
		V:             shearV * 1e3,
	}
	result, err := shear.Analyze(in, activeProfile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printTitle(out, "SHEAR CAPACITY - "+activeProfile.Name)

	printHeading(out, "INPUT DATA:")
	w := newTable(out)
	fmt.Fprintf(w, "  b × h (h0):\t%.0f × %.0f (%.0f) mm\n", g.B, g.H, g.H0)
	fmt.Fprintf(w, "  fc / ft:\t%.1f / %.2f MPa\n", shearFc, shearFt)
	fmt.Fprintf(w, "  αcv:\t%.3f\n", result.AlphaCV)
	if in.Reinforcement.HasStirrups() {
		fmt.Fprintf(w, "  Stirrups:\t%d × %.1f mm² @ %.0f mm, fyv = %.0f MPa\n", shearLegs, shearAsv, shearSpacing, shearFyv)
	}
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "CAPACITY:")
	w = newTable(out)
	fmt.Fprintf(w, "  Concrete (Vc):\t%.2f kN\n", result.Vc/1e3)
	fmt.Fprintf(w, "  Stirrups (Vs):\t%.2f kN\n", result.Vs/1e3)
	fmt.Fprintf(w, "  Section limit (Vmax):\t%.2f kN\n", result.Vmax/1e3)
	if in.Reinforcement.HasStirrups() {
		fmt.Fprintf(w, "  ρsv / ρsv,min:\t%.5f / %.5f %s\n", result.RhoSv, result.RhoSvMin, check(result.MeetsMinStirrups))
	}
	w.Flush()
	fmt.Fprintln(out)

	printBox(out, fmt.Sprintf("SHEAR CAPACITY Vu = %.2f kN", result.Vu/1e3))
	printWarnings(out, result.Warnings)
	printStatus(out, result.Message)
	return nil
}
