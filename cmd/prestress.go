package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/rccalc/internal/prestress"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	psSigmaCon  float64
	psMethod    string
	psEs        float64
	psSlip      float64
	psLength    float64
	psKappa     float64
	psDuctX     float64
	psMu        float64
	psTheta     float64
	psDeltaT    float64
	psPsi       float64
	psFptk      float64
	psSigmaPc   float64
	psFcuPrime  float64
	psRho       float64
	psAlphaE    float64
	psSigmaPcES float64
)

var prestressCmd = &cobra.Command{
	Use:   "prestress",
	Short: "Prestress losses and effective prestress",
	Long: `Calculate the prestress loss components and the effective prestress
σpe = σcon - Σσl.

Each loss is computed only when its inputs are given:
  σl1 anchorage       --slip, --length
  σl2 friction        --kappa, --x, --mu, --theta
  σl3 temperature     --delta-t
  σl4 relaxation      --psi, or --fptk to derive ψ
  σl5 creep/shrinkage --sigma-pc, --fcu-prime, --rho
  elastic shortening  --alpha-e, --sigma-pc-es

The total is raised to the code minimum (100 MPa pretensioned,
80 MPa post-tensioned). A total loss above σcon is an error.

Examples:
  rccalc prestress --sigma-con 1395 --method post --slip 5 --length 10000 \
      --kappa 0.0015 --x 20 --mu 0.25 --theta 0.2 --fptk 1860 \
      --sigma-pc 10 --fcu-prime 40 --rho 0.005`,
	RunE: runPrestress,
}

func init() {
	rootCmd.AddCommand(prestressCmd)

	f := prestressCmd.Flags()
	f.Float64Var(&psSigmaCon, "sigma-con", 0, "Jacking stress σcon (MPa) [required]")
	f.StringVar(&psMethod, "method", "post", "Tensioning method: pre or post")
	f.Float64Var(&psEs, "es", 1.95e5, "Tendon modulus Es (MPa)")
	f.Float64Var(&psSlip, "slip", 0, "Anchorage deformation a (mm)")
	f.Float64Var(&psLength, "length", 0, "Tendon length l (mm)")
	f.Float64Var(&psKappa, "kappa", 0, "Wobble coefficient κ (1/m)")
	f.Float64Var(&psDuctX, "x", 0, "Duct length from the jacking end x (m)")
	f.Float64Var(&psMu, "mu", 0, "Curvature friction coefficient μ")
	f.Float64Var(&psTheta, "theta", 0, "Cumulative duct angle θ (rad)")
	f.Float64Var(&psDeltaT, "delta-t", 0, "Curing temperature difference Δt (°C)")
	f.Float64Var(&psPsi, "psi", 0, "Relaxation coefficient ψ")
	f.Float64Var(&psFptk, "fptk", 0, "Tendon characteristic strength fptk (MPa), derives ψ")
	f.Float64Var(&psSigmaPc, "sigma-pc", 0, "Concrete precompression at the tendon σpc (MPa)")
	f.Float64Var(&psFcuPrime, "fcu-prime", 0, "Cube strength at transfer f'cu (MPa)")
	f.Float64Var(&psRho, "rho", 0, "Prestressed plus ordinary steel ratio ρ")
	f.Float64Var(&psAlphaE, "alpha-e", 0, "Modulus ratio αE for elastic shortening")
	f.Float64Var(&psSigmaPcES, "sigma-pc-es", 0, "Precompression from later tendons (MPa)")

	prestressCmd.MarkFlagRequired("sigma-con")
}

func parseTensioning(s string) (prestress.Tensioning, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pre", "pretensioned":
		return prestress.Pretensioned, nil
	case "post", "post-tensioned", "posttensioned":
		return prestress.PostTensioned, nil
	default:
		return 0, fmt.Errorf("unknown tensioning method %q, want pre or post", s)
	}
}

func computeLosses(method prestress.Tensioning) (prestress.Losses, error) {
	var l prestress.Losses
	var err error

	if psSlip > 0 || psLength > 0 {
		if l.Anchorage, err = prestress.AnchorageLoss(psSlip, psEs, psLength); err != nil {
			return l, err
		}
	}
	if psKappa > 0 || psMu > 0 {
		if l.Friction, err = prestress.FrictionLoss(psSigmaCon, psKappa, psDuctX, psMu, psTheta); err != nil {
			return l, err
		}
	}
	if psDeltaT > 0 {
		if l.Temperature, err = prestress.TemperatureLoss(psDeltaT); err != nil {
			return l, err
		}
	}

	psi := psPsi
	if psi == 0 && psFptk > 0 {
		if psi, err = prestress.RelaxationCoefficient(psSigmaCon, psFptk); err != nil {
			return l, err
		}
		logger.Debug("relaxation coefficient", zap.Float64("psi", psi))
	}
	if psi > 0 {
		if l.Relaxation, err = prestress.RelaxationLoss(psi, psSigmaCon); err != nil {
			return l, err
		}
	}

	if psFcuPrime > 0 {
		if l.CreepShrinkage, err = prestress.CreepShrinkageLoss(method, psSigmaPc, psFcuPrime, psRho); err != nil {
			return l, err
		}
	}
	if psAlphaE > 0 {
		if l.ElasticShortening, err = prestress.ElasticShorteningLoss(psAlphaE, psSigmaPcES); err != nil {
			return l, err
		}
	}
	return l, nil
}

func runPrestress(cmd *cobra.Command, args []string) error {
	method, err := parseTensioning(psMethod)
	if err != nil {
		return err
	}
	losses, err := computeLosses(method)
	if err != nil {
		return err
	}

	state := prestress.State{SigmaCon: psSigmaCon, Method: method, Losses: losses}
	sigmaPe, err := state.Effective()
	if err != nil {
		return err
	}
	first, err := state.AfterFirstStage()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printTitle(out, "PRESTRESS LOSSES - "+strings.ToUpper(method.String()))

	printHeading(out, "LOSS COMPONENTS (MPa):")
	w := newTable(out)
	fmt.Fprintf(w, "  σl1 anchorage:\t%.2f\n", losses.Anchorage)
	fmt.Fprintf(w, "  σl2 friction:\t%.2f\n", losses.Friction)
	fmt.Fprintf(w, "  σl3 temperature:\t%.2f\n", losses.Temperature)
	fmt.Fprintf(w, "  σl4 relaxation:\t%.2f\n", losses.Relaxation)
	fmt.Fprintf(w, "  σl5 creep/shrinkage:\t%.2f\n", losses.CreepShrinkage)
	if losses.ElasticShortening > 0 {
		fmt.Fprintf(w, "  elastic shortening:\t%.2f\n", losses.ElasticShortening)
	}
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "TOTALS (MPa):")
	w = newTable(out)
	fmt.Fprintf(w, "  First stage:\t%.2f\n", losses.FirstStage(method))
	fmt.Fprintf(w, "  Second stage:\t%.2f\n", losses.SecondStage(method))
	fmt.Fprintf(w, "  Sum:\t%.2f\n", losses.Total())
	fmt.Fprintf(w, "  Design total:\t%.2f\n", losses.DesignTotal(method))
	fmt.Fprintf(w, "  σcon after first stage:\t%.2f\n", first)
	w.Flush()
	fmt.Fprintln(out)

	printBox(out, fmt.Sprintf("EFFECTIVE PRESTRESS σpe = %.2f MPa", sigmaPe))
	return nil
}
