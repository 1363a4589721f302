package cmd

import (
	"fmt"

	"github.com/alexiusacademia/rccalc/internal/section"
	"github.com/alexiusacademia/rccalc/internal/serviceability"
	"github.com/spf13/cobra"
)

var (
	crackWidth    float64
	crackHeight   float64
	crackCover    float64
	crackSpan     float64
	crackEs       float64
	crackEc       float64
	crackAs       float64
	crackAsPrime  float64
	crackDeq      float64
	crackCs       float64
	crackFtk      float64
	crackMq       float64
	crackLimit    float64
	crackGammaF   float64
	crackLoad     float64
	crackDeflLim  float64
	crackRhoLimit bool
)

var crackCmd = &cobra.Command{
	Use:   "crack",
	Short: "Crack width and long-term stiffness check",
	Long: `Check the maximum crack width of a rectangular beam under the
quasi-permanent moment Mq:

  ρte  = As/(0.5·b·h) >= 0.01
  σs   = Mq/(0.87·h0·As)
  ψ    = 1.1 - 0.65·ftk/(ρte·σs), within [0.2, 1.0]
  wmax = 1.9·ψ·σs/Es·(1.9·cs + 0.08·deq/ρte)

The short-term stiffness Bs and the long-term stiffness B = Bs/θ are
reported. With --span and --load the long-term deflection is checked.

Examples:
  rccalc crack --width 200 --height 500 --as 1256 --deq 20 --cs 25 --mq 100
  rccalc crack -b 200 --height 500 --as 1256 --deq 20 --mq 100 --span 6000 --load 15`,
	RunE: runCrack,
}

func init() {
	rootCmd.AddCommand(crackCmd)

	f := crackCmd.Flags()
	f.Float64VarP(&crackWidth, "width", "b", 0, "Beam width b (mm) [required]")
	f.Float64Var(&crackHeight, "height", 0, "Beam total depth h (mm) [required]")
	f.Float64VarP(&crackCover, "cover", "c", 40, "Cover to tension steel centroid as (mm)")
	f.Float64VarP(&crackSpan, "span", "l", 0, "Span l (mm), for the deflection check")
	f.Float64Var(&crackEs, "es", 2e5, "Steel modulus Es (MPa)")
	f.Float64Var(&crackEc, "ec", 3e4, "Concrete modulus Ec (MPa)")
	f.Float64VarP(&crackAs, "as", "a", 0, "Tension steel area As (mm²) [required]")
	f.Float64Var(&crackAsPrime, "as-prime", 0, "Compression steel area As' (mm²)")
	f.Float64Var(&crackDeq, "deq", 20, "Equivalent bar diameter deq (mm)")
	f.Float64Var(&crackCs, "cs", 25, "Clear cover to the outer tension bar cs (mm)")
	f.Float64Var(&crackFtk, "ftk", 2.01, "Concrete characteristic tensile strength ftk (MPa)")
	f.Float64Var(&crackMq, "mq", 0, "Quasi-permanent moment Mq (kN·m) [required]")
	f.Float64Var(&crackLimit, "limit", 0.3, "Crack width limit wlim (mm)")
	f.Float64Var(&crackGammaF, "gamma-f", 0, "Compression flange ratio γf'")
	f.Float64VarP(&crackLoad, "load", "w", 0, "Quasi-permanent uniform load (kN/m), for the deflection check")
	f.Float64Var(&crackDeflLim, "defl-limit", 200, "Deflection limit ratio, f <= l/limit")
	f.BoolVar(&crackRhoLimit, "ratios", false, "Also check ρ against the profile ρmin and ρmax")

	crackCmd.MarkFlagRequired("width")
	crackCmd.MarkFlagRequired("height")
	crackCmd.MarkFlagRequired("as")
	crackCmd.MarkFlagRequired("mq")
}

func runCrack(cmd *cobra.Command, args []string) error {
	g, err := section.NewGeometry(crackWidth, crackHeight, crackCover, crackSpan)
	if err != nil {
		return err
	}

	c := serviceability.CrackCheck{
		Geometry: g,
		Material: section.Material{Es: crackEs, Ec: crackEc},
		As:       crackAs,
		AsPrime:  crackAsPrime,
		Deq:      crackDeq,
		Cs:       crackCs,
		Ftk:      crackFtk,
		Mq:       crackMq * 1e6,
		Limit:    crackLimit,
		GammaF:   crackGammaF,
		DeflLoad: crackLoad,
		DeflLim:  crackDeflLim,
	}
	result, err := c.Analyze()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printTitle(out, "CRACK WIDTH AND STIFFNESS")

	printHeading(out, "CRACK WIDTH:")
	w := newTable(out)
	fmt.Fprintf(w, "  ρte:\t%.4f\n", result.RhoTe)
	fmt.Fprintf(w, "  σs:\t%.1f MPa\n", result.SigmaS)
	fmt.Fprintf(w, "  ψ:\t%.3f\n", result.Psi)
	fmt.Fprintf(w, "  wmax / wlim:\t%.3f / %.2f mm %s\n", result.Wmax, crackLimit, check(result.CrackOK))
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "STIFFNESS:")
	w = newTable(out)
	fmt.Fprintf(w, "  Bs:\t%.4g N·mm²\n", result.Bs)
	fmt.Fprintf(w, "  θ:\t%.2f\n", result.Theta)
	fmt.Fprintf(w, "  B = Bs/θ:\t%.4g N·mm²\n", result.B)
	if result.Deflection > 0 {
		fmt.Fprintf(w, "  Long-term deflection:\t%.2f mm (l/%.0f = %.2f mm) %s\n",
			result.Deflection, crackDeflLim, g.Span/crackDeflLim, check(result.DeflectionOK))
	}
	w.Flush()
	fmt.Fprintln(out)

	if crackRhoLimit {
		rho, err := section.RebarRatio(crackAs, g.B, g.H0)
		if err != nil {
			return err
		}
		printHeading(out, "REINFORCEMENT RATIO:")
		w = newTable(out)
		fmt.Fprintf(w, "  ρ:\t%.5f\n", rho)
		fmt.Fprintf(w, "  ρ >= ρmin (%.4f):\t%s\n", activeProfile.RhoMin, check(serviceability.CheckMinRebarRatio(rho, activeProfile.RhoMin)))
		fmt.Fprintf(w, "  ρ <= ρmax (%.4f):\t%s\n", activeProfile.RhoMax, check(serviceability.CheckMaxRebarRatio(rho, activeProfile.RhoMax)))
		w.Flush()
		fmt.Fprintln(out)
	}

	printBox(out, fmt.Sprintf("wmax = %.3f mm", result.Wmax))
	printStatus(out, result.Message)
	return nil
}
