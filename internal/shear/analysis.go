package shear

import (
	"fmt"

	"github.com/alexiusacademia/rccalc/internal/numeric"
	"github.com/alexiusacademia/rccalc/internal/profile"
	"github.com/alexiusacademia/rccalc/internal/section"
)

// Input bundles a shear check
type Input struct {
	Geometry      section.Geometry
	Material      section.Material
	Reinforcement section.Reinforcement

	// AlphaCV overrides the profile coefficient when > 0
	AlphaCV float64

	// BetaC is the concrete strength factor for the section limit, 1.0 when zero
	BetaC float64

	// V is the design shear (N), 0 to skip the demand check
	V float64
}

// Result holds the shear capacity breakdown (N)
type Result struct {
	AlphaCV float64
	Vc      float64 // Concrete contribution
	Vs      float64 // Stirrup contribution
	Vu      float64 // Vc + Vs
	Vmax    float64 // Section limit

	RhoSv    float64
	RhoSvMin float64

	SectionAdequate  bool // V <= Vmax
	CapacityAdequate bool // V <= Vu
	MeetsMinStirrups bool

	Warnings []numeric.RangeWarning
	Message  string
}

// Analyze computes shear capacity of a rectangular section with optional
// stirrups and compares it with the design shear.
func Analyze(in Input, p profile.Profile) (*Result, error) {
	g, m, r := in.Geometry, in.Material, in.Reinforcement
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	result := &Result{AlphaCV: p.ShearAlphaCV, Warnings: m.Warnings(p.ConcreteRange, p.SteelRange)}
	if in.AlphaCV > 0 {
		result.AlphaCV = in.AlphaCV
	}
	betaC := in.BetaC
	if betaC <= 0 {
		betaC = 1.0
	}

	var err error
	if result.Vc, err = ConcreteOnly(g.B, g.H0, m.Ft, result.AlphaCV); err != nil {
		return nil, err
	}
	if r.HasStirrups() {
		if result.Vs, err = StirrupContribution(g.H0, m.Fyv, r.Asv, r.S, r.Legs); err != nil {
			return nil, err
		}
		if result.RhoSv, err = StirrupRatio(r.Asv, r.Legs, g.B, r.S); err != nil {
			return nil, err
		}
	}
	result.Vu = result.Vc + result.Vs

	if result.Vmax, err = SectionLimit(g.B, g.H0, g.H0, m.Fc, betaC); err != nil {
		return nil, err
	}
	if m.Fyv > 0 {
		if result.RhoSvMin, err = MinStirrupRatio(m.Ft, m.Fyv); err != nil {
			return nil, err
		}
	}
	result.MeetsMinStirrups = r.HasStirrups() && result.RhoSv >= result.RhoSvMin

	result.SectionAdequate = in.V <= result.Vmax
	result.CapacityAdequate = in.V <= result.Vu

	switch {
	case !result.SectionAdequate:
		result.Message = fmt.Sprintf("Section too small: V = %.0f N > %.0f N", in.V, result.Vmax)
	case !result.CapacityAdequate:
		result.Message = fmt.Sprintf("Shear capacity insufficient: V = %.0f N > Vu = %.0f N", in.V, result.Vu)
	default:
		result.Message = "Shear capacity OK"
	}
	if r.HasStirrups() && !result.MeetsMinStirrups {
		result.Message += " | WARNING: Below minimum stirrup ratio"
	}

	return result, nil
}
