// Package prestress computes prestress loss components and the resulting
// effective prestress. Loss numbering follows GB 50010 Table 10.2.1:
//
//	σl1  anchorage deformation and tendon slip
//	σl2  friction along the duct
//	σl3  temperature difference during steam curing
//	σl4  steel relaxation
//	σl5  concrete creep and shrinkage
//
// Elastic shortening is reported separately for post-tensioned members
// stressed in stages. All stresses are in MPa.
package prestress

import (
	"math"
	"sort"

	"github.com/alexiusacademia/rccalc/internal/numeric"
)

const (
	// TemperatureLossPerDegree is σl3 per °C of curing temperature difference
	TemperatureLossPerDegree = 2.0

	// MaxCreepStressRatio bounds σpc/f'cu for the creep/shrinkage formulas
	MaxCreepStressRatio = 0.5
)

// Tensioning distinguishes pre- and post-tensioned members
type Tensioning int

const (
	Pretensioned Tensioning = iota
	PostTensioned
)

func (t Tensioning) String() string {
	switch t {
	case Pretensioned:
		return "pretensioned"
	case PostTensioned:
		return "post-tensioned"
	default:
		return "unknown"
	}
}

// AnchorageLoss returns σl1 = a·Es/l for anchorage deformation a (mm)
// over tendon length l (mm).
func AnchorageLoss(a, es, l float64) (float64, error) {
	if l <= 0 {
		return 0, numeric.Domain("AnchorageLoss", "l", l, "must be positive")
	}
	if a < 0 {
		return 0, numeric.Domain("AnchorageLoss", "a", a, "must be >= 0")
	}
	if es <= 0 {
		return 0, numeric.Domain("AnchorageLoss", "Es", es, "must be positive")
	}
	return a * es / l, nil
}

// FrictionLoss returns σl2 = σcon·(1 - e^-(κx + μθ)) for duct length x (m)
// and cumulative angle θ (rad).
func FrictionLoss(sigmaCon, kappa, x, mu, theta float64) (float64, error) {
	if sigmaCon < 0 {
		return 0, numeric.Domain("FrictionLoss", "sigma_con", sigmaCon, "must be >= 0")
	}
	if kappa < 0 || x < 0 || mu < 0 || theta < 0 {
		return 0, numeric.Domain("FrictionLoss", "kappa*x+mu*theta", kappa*x+mu*theta, "terms must be >= 0")
	}
	return sigmaCon * (1 - math.Exp(-(kappa*x + mu*theta))), nil
}

// TemperatureLoss returns σl3 = 2·Δt
func TemperatureLoss(deltaT float64) (float64, error) {
	if deltaT < 0 {
		return 0, numeric.Domain("TemperatureLoss", "delta_t", deltaT, "must be >= 0")
	}
	return TemperatureLossPerDegree * deltaT, nil
}

// RelaxationLoss returns σl4 = ψ·σcon
func RelaxationLoss(psi, sigmaCon float64) (float64, error) {
	if psi < 0 || psi > 1 {
		return 0, numeric.Domain("RelaxationLoss", "psi", psi, "must be in [0, 1]")
	}
	if sigmaCon < 0 {
		return 0, numeric.Domain("RelaxationLoss", "sigma_con", sigmaCon, "must be >= 0")
	}
	return psi * sigmaCon, nil
}

// RelaxationCoefficient returns ψ for low-relaxation strand and wire:
//
//	σcon <= 0.5fptk          ψ = 0
//	0.5fptk < σcon <= 0.7fptk  ψ = 0.125(σcon/fptk - 0.5)
//	0.7fptk < σcon <= 0.8fptk  ψ = 0.2(σcon/fptk - 0.575)
func RelaxationCoefficient(sigmaCon, fptk float64) (float64, error) {
	if fptk <= 0 {
		return 0, numeric.Domain("RelaxationCoefficient", "fptk", fptk, "must be positive")
	}
	r := sigmaCon / fptk
	switch {
	case r < 0:
		return 0, numeric.Domain("RelaxationCoefficient", "sigma_con", sigmaCon, "must be >= 0")
	case r <= 0.5:
		return 0, nil
	case r <= 0.7:
		return 0.125 * (r - 0.5), nil
	case r <= 0.8:
		return 0.2 * (r - 0.575), nil
	default:
		return 0, numeric.Domain("RelaxationCoefficient", "sigma_con/fptk", r, "must not exceed 0.8")
	}
}

// ElasticShorteningLoss returns αE·σpc, the loss in a tendon caused by
// stressing later tendons.
func ElasticShorteningLoss(alphaE, sigmaPc float64) (float64, error) {
	if alphaE <= 0 {
		return 0, numeric.Domain("ElasticShorteningLoss", "alpha_E", alphaE, "must be positive")
	}
	if sigmaPc < 0 {
		return 0, numeric.Domain("ElasticShorteningLoss", "sigma_pc", sigmaPc, "must be >= 0")
	}
	return alphaE * sigmaPc, nil
}

// CreepShrinkageLoss returns σl5 for tensile steel:
//
//	pretensioned    (60 + 340·σpc/f'cu)/(1 + 15ρ)
//	post-tensioned  (55 + 300·σpc/f'cu)/(1 + 15ρ)
//
// σpc is the concrete precompression at the tendon after the first-stage
// losses, f'cu the cube strength at transfer and ρ the steel ratio.
func CreepShrinkageLoss(method Tensioning, sigmaPc, fcuPrime, rho float64) (float64, error) {
	if fcuPrime <= 0 {
		return 0, numeric.Domain("CreepShrinkageLoss", "fcu'", fcuPrime, "must be positive")
	}
	if sigmaPc < 0 {
		return 0, numeric.Domain("CreepShrinkageLoss", "sigma_pc", sigmaPc, "must be >= 0")
	}
	if rho < 0 {
		return 0, numeric.Domain("CreepShrinkageLoss", "rho", rho, "must be >= 0")
	}
	ratio := sigmaPc / fcuPrime
	if ratio > MaxCreepStressRatio {
		return 0, numeric.Domain("CreepShrinkageLoss", "sigma_pc/fcu'", ratio, "must not exceed 0.5")
	}

	switch method {
	case Pretensioned:
		return (60 + 340*ratio) / (1 + 15*rho), nil
	case PostTensioned:
		return (55 + 300*ratio) / (1 + 15*rho), nil
	default:
		return 0, numeric.Domain("CreepShrinkageLoss", "method", float64(method), "unknown tensioning method")
	}
}

// TotalLoss sums the five loss components. Unused mechanisms are passed as 0.
// Signs are not checked here; Losses.Validate rejects negative components
// before a State is evaluated.
// The terms are added in ascending order so every permutation of the
// arguments gives the same float64 result.
func TotalLoss(l1, l2, l3, l4, l5 float64) float64 {
	terms := []float64{l1, l2, l3, l4, l5}
	sort.Float64s(terms)

	var total float64
	for _, v := range terms {
		total += v
	}
	return total
}

// EffectivePrestress returns σpe = σcon - total. A total loss larger than
// σcon is a DomainError, it means the inputs describe no prestress at all.
func EffectivePrestress(sigmaCon, totalLoss float64) (float64, error) {
	if sigmaCon < 0 {
		return 0, numeric.Domain("EffectivePrestress", "sigma_con", sigmaCon, "must be >= 0")
	}
	if totalLoss < 0 {
		return 0, numeric.Domain("EffectivePrestress", "total_loss", totalLoss, "must be >= 0")
	}
	sigmaPe := sigmaCon - totalLoss
	if sigmaPe < 0 {
		return 0, numeric.Domain("EffectivePrestress", "total_loss", totalLoss, "exceeds sigma_con")
	}
	return sigmaPe, nil
}
