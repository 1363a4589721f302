package section

import "github.com/alexiusacademia/rccalc/internal/numeric"

// EffectiveHeight returns h0 = h - as, the depth from the compression face
// to the centroid of the tension steel.
func EffectiveHeight(h, as float64) (float64, error) {
	if h <= 0 {
		return 0, numeric.Domain("EffectiveHeight", "h", h, "must be positive")
	}
	if as < 0 {
		return 0, numeric.Domain("EffectiveHeight", "as", as, "must be >= 0")
	}
	if as >= h {
		return 0, numeric.Domain("EffectiveHeight", "as", as, "must be less than h")
	}
	return h - as, nil
}

// ElasticModulusRatio returns αE = Es/Ec
func ElasticModulusRatio(es, ec float64) (float64, error) {
	if ec <= 0 {
		return 0, numeric.Domain("ElasticModulusRatio", "Ec", ec, "must be positive")
	}
	return es / ec, nil
}

// TransformedArea returns A0 = Ac + (αE - 1)·As
func TransformedArea(ac, alphaE, as float64) float64 {
	return ac + (alphaE-1)*as
}

// RebarRatio returns ρ = As/(b·h0)
func RebarRatio(as, b, h0 float64) (float64, error) {
	if b*h0 <= 0 {
		return 0, numeric.Domain("RebarRatio", "b*h0", b*h0, "must be positive")
	}
	return as / (b * h0), nil
}

// RelativeCompressionZoneHeight returns ξ = x/h0
func RelativeCompressionZoneHeight(x, h0 float64) (float64, error) {
	if h0 <= 0 {
		return 0, numeric.Domain("RelativeCompressionZoneHeight", "h0", h0, "must be positive")
	}
	return x / h0, nil
}

// IsOverReinforced reports ξ > ξb. ξ == ξb is not over-reinforced.
func IsOverReinforced(xi, xib float64) bool {
	return xi > xib
}
