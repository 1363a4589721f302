package shear

import (
	"math"

	"github.com/alexiusacademia/rccalc/internal/numeric"
)

// GB 50010 Section 6.3 constants
const (
	// Shear span ratio bounds for concentrated loads (Section 6.3.4)
	LambdaMin = 1.5
	LambdaMax = 3.0

	// Section limit factors: 0.25 for hw/b <= 4, 0.2 for hw/b >= 6 (Section 6.3.1)
	SectionLimitStocky  = 0.25
	SectionLimitSlender = 0.2

	// MinStirrupFactor gives ρsv,min = 0.24·ft/fyv (Section 9.2.9)
	MinStirrupFactor = 0.24
)

// ConcreteOnly returns Vc = αcv·ft·b·h0 (N)
func ConcreteOnly(b, h0, ft, alphaCV float64) (float64, error) {
	if b <= 0 {
		return 0, numeric.Domain("ConcreteOnly", "b", b, "must be positive")
	}
	if h0 <= 0 {
		return 0, numeric.Domain("ConcreteOnly", "h0", h0, "must be positive")
	}
	if ft < 0 {
		return 0, numeric.Domain("ConcreteOnly", "ft", ft, "must be >= 0")
	}
	if alphaCV < 0 {
		return 0, numeric.Domain("ConcreteOnly", "alpha_cv", alphaCV, "must be >= 0")
	}
	return alphaCV * ft * b * h0, nil
}

// StirrupContribution returns Vs = fyv·Asv·n·h0/s (N), the truss-analogy
// share of the stirrups.
func StirrupContribution(h0, fyv, asv, s float64, n int) (float64, error) {
	if s <= 0 {
		return 0, numeric.Domain("StirrupContribution", "s", s, "must be positive")
	}
	if asv < 0 {
		return 0, numeric.Domain("StirrupContribution", "Asv", asv, "must be >= 0")
	}
	if asv > 0 && n < 1 {
		return 0, numeric.Domain("StirrupContribution", "n", float64(n), "must be >= 1")
	}
	if fyv < 0 {
		return 0, numeric.Domain("StirrupContribution", "fyv", fyv, "must be >= 0")
	}
	return fyv * asv * float64(n) * h0 / s, nil
}

// WithStirrups returns Vc + Vs (N)
func WithStirrups(b, h0, ft, alphaCV, fyv, asv, s float64, n int) (float64, error) {
	vc, err := ConcreteOnly(b, h0, ft, alphaCV)
	if err != nil {
		return 0, err
	}
	vs, err := StirrupContribution(h0, fyv, asv, s, n)
	if err != nil {
		return 0, err
	}
	return vc + vs, nil
}

// ConcentratedLoadCoefficient returns αcv = 1.75/(λ+1) for members where
// concentrated loads dominate, with λ clamped to [1.5, 3].
func ConcentratedLoadCoefficient(lambda float64) float64 {
	lambda = math.Max(LambdaMin, math.Min(lambda, LambdaMax))
	return 1.75 / (lambda + 1)
}

// SectionLimit returns the upper bound β·βc·fc·b·h0 on design shear (N)
// where β goes from 0.25 at hw/b <= 4 to 0.2 at hw/b >= 6.
func SectionLimit(b, h0, hw, fc, betaC float64) (float64, error) {
	if b <= 0 || h0 <= 0 {
		return 0, numeric.Domain("SectionLimit", "b*h0", b*h0, "must be positive")
	}
	if hw <= 0 {
		return 0, numeric.Domain("SectionLimit", "hw", hw, "must be positive")
	}
	ratio := hw / b
	var beta float64
	switch {
	case ratio <= 4:
		beta = SectionLimitStocky
	case ratio >= 6:
		beta = SectionLimitSlender
	default:
		beta = SectionLimitStocky - (SectionLimitStocky-SectionLimitSlender)*(ratio-4)/2
	}
	return beta * betaC * fc * b * h0, nil
}

// MinStirrupRatio returns ρsv,min = 0.24·ft/fyv
func MinStirrupRatio(ft, fyv float64) (float64, error) {
	if fyv <= 0 {
		return 0, numeric.Domain("MinStirrupRatio", "fyv", fyv, "must be positive")
	}
	return MinStirrupFactor * ft / fyv, nil
}

// StirrupRatio returns ρsv = n·Asv/(b·s)
func StirrupRatio(asv float64, n int, b, s float64) (float64, error) {
	if b*s <= 0 {
		return 0, numeric.Domain("StirrupRatio", "b*s", b*s, "must be positive")
	}
	return float64(n) * asv / (b * s), nil
}
