package profile

import (
	"fmt"

	"github.com/alexiusacademia/rccalc/internal/numeric"
)

// Default GB 50010-2010 constants

const (
	// Alpha1 is the stress-block factor for concrete up to C50 (Section 6.2.6)
	Alpha1 = 1.0

	// AxialFactor is the 0.9 factor in Nu = 0.9φ(fc·A + f'y·A's) (Section 6.2.15)
	AxialFactor = 0.9

	// XiB is the balanced relative compression-zone height for HRB400 with C50 or lower
	XiB = 0.518

	// RhoMin for flexural members, the larger of 0.2% and 45ft/fy governs in practice
	RhoMin = 0.002

	// RhoMax is the practical upper bound for beam tension steel
	RhoMax = 0.025

	// ShearAlphaCV is αcv for general flexural members (Section 6.3.4)
	ShearAlphaCV = 0.7

	// StabilityThreshold is the slenderness up to which φ = 1.0
	StabilityThreshold = 5.0
)

// Profile bundles every code-specific number the engine needs.
// A Profile is a plain value: callers pass it explicitly, nothing in the
// engine keeps a current one.
type Profile struct {
	Name string `yaml:"name"`

	Alpha1       float64 `yaml:"alpha1"`
	AxialFactor  float64 `yaml:"axial_factor"`
	XiB          float64 `yaml:"xi_b"`
	RhoMin       float64 `yaml:"rho_min"`
	RhoMax       float64 `yaml:"rho_max"`
	ShearAlphaCV float64 `yaml:"shear_alpha_cv"`

	// Documented engineering ranges, outside of which results carry warnings
	ConcreteRange numeric.Range `yaml:"concrete_range"`
	SteelRange    numeric.Range `yaml:"steel_range"`

	Stability    StabilityCurve    `yaml:"stability"`
	Combinations []LoadCombination `yaml:"combinations"`
}

// Default returns the GB 50010 profile
func Default() Profile {
	return Profile{
		Name:          "GB50010-2010",
		Alpha1:        Alpha1,
		AxialFactor:   AxialFactor,
		XiB:           XiB,
		RhoMin:        RhoMin,
		RhoMax:        RhoMax,
		ShearAlphaCV:  ShearAlphaCV,
		ConcreteRange: numeric.Range{Min: 10, Max: 50},
		SteelRange:    numeric.Range{Min: 200, Max: 500},
		Stability:     DefaultStabilityCurve(),
		Combinations:  DefaultCombinations(),
	}
}

// Validate checks that the profile constants are usable
func (p Profile) Validate() error {
	if p.Alpha1 <= 0 || p.Alpha1 > 1 {
		return fmt.Errorf("profile %q: alpha1 must be in (0, 1], got %g", p.Name, p.Alpha1)
	}
	if p.AxialFactor <= 0 || p.AxialFactor > 1 {
		return fmt.Errorf("profile %q: axial_factor must be in (0, 1], got %g", p.Name, p.AxialFactor)
	}
	if p.XiB <= 0 || p.XiB >= 1 {
		return fmt.Errorf("profile %q: xi_b must be in (0, 1), got %g", p.Name, p.XiB)
	}
	if p.RhoMin < 0 || p.RhoMax <= p.RhoMin {
		return fmt.Errorf("profile %q: need 0 <= rho_min < rho_max, got %g and %g", p.Name, p.RhoMin, p.RhoMax)
	}
	if p.ShearAlphaCV <= 0 {
		return fmt.Errorf("profile %q: shear_alpha_cv must be positive, got %g", p.Name, p.ShearAlphaCV)
	}
	if p.ConcreteRange.Min >= p.ConcreteRange.Max || p.SteelRange.Min >= p.SteelRange.Max {
		return fmt.Errorf("profile %q: material ranges must have min < max", p.Name)
	}
	if err := p.Stability.Validate(); err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return nil
}
