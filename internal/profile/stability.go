package profile

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/rccalc/internal/numeric"
)

// StabilityPoint is one row of a stability-factor table
type StabilityPoint struct {
	Slenderness float64 `yaml:"slenderness"` // l0/b
	Phi         float64 `yaml:"phi"`
}

// StabilityCurve is the piecewise-linear stability factor φ(l0/b).
//
// φ is exactly 1.0 up to Threshold. Between (Threshold, 1.0) and the first
// tabulated point, and between consecutive points, φ is interpolated
// linearly. Past the last point φ stays at the last tabulated value.
type StabilityCurve struct {
	Threshold float64          `yaml:"threshold"`
	Points    []StabilityPoint `yaml:"points"`
}

// DefaultStabilityCurve follows GB 50010 Table 6.2.15 for rectangular sections,
// saturating at l0/b = 5.
func DefaultStabilityCurve() StabilityCurve {
	return StabilityCurve{
		Threshold: StabilityThreshold,
		Points: []StabilityPoint{
			{10, 0.98}, {12, 0.95}, {14, 0.92}, {16, 0.87}, {18, 0.81},
			{20, 0.75}, {22, 0.70}, {24, 0.65}, {26, 0.60}, {28, 0.56},
			{30, 0.52}, {32, 0.48}, {34, 0.44}, {36, 0.40}, {38, 0.36},
			{40, 0.32}, {42, 0.29}, {44, 0.26}, {46, 0.23}, {48, 0.21},
			{50, 0.19},
		},
	}
}

// Validate requires increasing slenderness past the threshold and
// non-increasing φ strictly below 1.
func (c StabilityCurve) Validate() error {
	if c.Threshold < 0 {
		return fmt.Errorf("stability threshold must be >= 0, got %g", c.Threshold)
	}
	if len(c.Points) == 0 {
		return fmt.Errorf("stability table is empty")
	}
	prevX, prevPhi := c.Threshold, 1.0
	for i, pt := range c.Points {
		if pt.Slenderness <= prevX {
			return fmt.Errorf("stability point %d: slenderness %g must exceed %g", i, pt.Slenderness, prevX)
		}
		if pt.Phi <= 0 || pt.Phi >= 1 {
			return fmt.Errorf("stability point %d: phi %g must be in (0, 1)", i, pt.Phi)
		}
		if pt.Phi > prevPhi {
			return fmt.Errorf("stability point %d: phi %g increases over %g", i, pt.Phi, prevPhi)
		}
		prevX, prevPhi = pt.Slenderness, pt.Phi
	}
	return nil
}

// Factor returns φ for the given slenderness ratio
func (c StabilityCurve) Factor(ratio float64) (float64, error) {
	if ratio < 0 || math.IsNaN(ratio) {
		return 0, numeric.Domain("StabilityFactor", "slenderness", ratio, "must be >= 0")
	}
	if ratio <= c.Threshold {
		return 1.0, nil
	}
	if len(c.Points) == 0 {
		return 0, fmt.Errorf("stability table is empty")
	}

	x0, y0 := c.Threshold, 1.0
	for _, pt := range c.Points {
		if ratio <= pt.Slenderness {
			return y0 + (pt.Phi-y0)*(ratio-x0)/(pt.Slenderness-x0), nil
		}
		x0, y0 = pt.Slenderness, pt.Phi
	}
	return y0, nil
}
