package axial

import (
	"fmt"

	"github.com/alexiusacademia/rccalc/internal/numeric"
	"github.com/alexiusacademia/rccalc/internal/profile"
	"github.com/alexiusacademia/rccalc/internal/section"
)

// NetAreaRatio is the compression steel ratio above which the concrete area
// is reduced by A's (GB 50010 Section 6.2.15)
const NetAreaRatio = 0.03

// CompressionCapacity returns Nu = φ·factor·(fc·A + f'y·A's) in N.
// factor is the code constant (0.9 in GB 50010), phi the stability factor.
func CompressionCapacity(fc, a, fyc, asc, phi, factor float64) (float64, error) {
	if fc <= 0 {
		return 0, numeric.Domain("CompressionCapacity", "fc", fc, "must be positive")
	}
	if a <= 0 {
		return 0, numeric.Domain("CompressionCapacity", "A", a, "must be positive")
	}
	if fyc < 0 || asc < 0 {
		return 0, numeric.Domain("CompressionCapacity", "fy'*As'", fyc*asc, "steel terms must be >= 0")
	}
	if phi <= 0 || phi > 1 {
		return 0, numeric.Domain("CompressionCapacity", "phi", phi, "must be in (0, 1]")
	}
	if factor <= 0 {
		return 0, numeric.Domain("CompressionCapacity", "factor", factor, "must be positive")
	}
	return phi * factor * (fc*a + fyc*asc), nil
}

// TensionCapacity returns Nu = fy·As in N; concrete carries no tension
func TensionCapacity(fy, as float64) (float64, error) {
	if fy <= 0 {
		return 0, numeric.Domain("TensionCapacity", "fy", fy, "must be positive")
	}
	if as < 0 {
		return 0, numeric.Domain("TensionCapacity", "As", as, "must be >= 0")
	}
	return fy * as, nil
}

// StabilityFactor looks φ up on the profile curve
func StabilityFactor(curve profile.StabilityCurve, slenderness float64) (float64, error) {
	return curve.Factor(slenderness)
}

// Column represents an axially loaded rectangular column.
// Slenderness is taken on the smaller of B and H, whichever way round they are given.
type Column struct {
	B        float64 // mm
	H        float64 // mm
	Material section.Material
	AsPrime  float64 // total longitudinal steel (mm²)
	Profile  profile.Profile
}

// ColumnResult holds the results of a column check
type ColumnResult struct {
	Slenderness float64 // l0/b, b the smaller side
	Phi         float64
	Area        float64 // Concrete area used (mm²)
	RhoPrime    float64
	NetArea     bool // true when A's was deducted from the gross area

	Nu float64 // Compression capacity (N)
	Nt float64 // Tension capacity (N)

	Adequate bool // N <= Nu
	Warnings []numeric.RangeWarning
	Message  string
}

// Analyze checks the column for effective length l0 (mm) and axial load n (N)
func (c *Column) Analyze(l0, n float64) (*ColumnResult, error) {
	if c.B <= 0 || c.H <= 0 {
		return nil, numeric.Domain("Column.Analyze", "b*h", c.B*c.H, "must be positive")
	}
	if l0 < 0 {
		return nil, numeric.Domain("Column.Analyze", "l0", l0, "must be >= 0")
	}
	if err := c.Material.Validate(); err != nil {
		return nil, err
	}

	m, p := c.Material, c.Profile
	gross := c.B * c.H
	result := &ColumnResult{
		Slenderness: l0 / min(c.B, c.H),
		Area:        gross,
		RhoPrime:    c.AsPrime / gross,
		Warnings:    m.Warnings(p.ConcreteRange, p.SteelRange),
	}
	if result.RhoPrime > NetAreaRatio {
		result.Area = gross - c.AsPrime
		result.NetArea = true
	}

	var err error
	if result.Phi, err = StabilityFactor(p.Stability, result.Slenderness); err != nil {
		return nil, err
	}
	if result.Nu, err = CompressionCapacity(m.Fc, result.Area, m.CompressionYield(), c.AsPrime, result.Phi, p.AxialFactor); err != nil {
		return nil, err
	}
	if result.Nt, err = TensionCapacity(m.Fy, c.AsPrime); err != nil {
		return nil, err
	}

	result.Adequate = n <= result.Nu
	if result.Adequate {
		result.Message = fmt.Sprintf("N = %.0f N <= Nu = %.0f N (φ = %.3f)", n, result.Nu, result.Phi)
	} else {
		result.Message = fmt.Sprintf("Column inadequate: N = %.0f N > Nu = %.0f N (φ = %.3f)", n, result.Nu, result.Phi)
	}
	return result, nil
}
