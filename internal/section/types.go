package section

import "github.com/alexiusacademia/rccalc/internal/numeric"

// Geometry is a rectangular member section (mm)
type Geometry struct {
	B     float64 // b - width
	H     float64 // h - overall height
	Cover float64 // as - cover to centroid of tension steel
	H0    float64 // h0 - effective depth, H - Cover
	Span  float64 // l - clear span, 0 when not needed
}

// NewGeometry builds a geometry with h0 computed from the cover
func NewGeometry(b, h, cover, span float64) (Geometry, error) {
	if b <= 0 {
		return Geometry{}, numeric.Domain("NewGeometry", "b", b, "must be positive")
	}
	if span < 0 {
		return Geometry{}, numeric.Domain("NewGeometry", "l", span, "must be >= 0")
	}
	h0, err := EffectiveHeight(h, cover)
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{B: b, H: h, Cover: cover, H0: h0, Span: span}, nil
}

// GrossArea returns b·h
func (g Geometry) GrossArea() float64 {
	return g.B * g.H
}

// Material holds design strengths and moduli (MPa)
type Material struct {
	Fc      float64 // concrete compressive design strength
	Ft      float64 // concrete tensile design strength
	Fy      float64 // tension steel yield strength
	FyPrime float64 // compression steel yield strength, Fy when zero
	Fyv     float64 // stirrup yield strength
	Es      float64 // steel modulus
	Ec      float64 // concrete modulus
}

// CompressionYield returns f'y, falling back to fy
func (m Material) CompressionYield() float64 {
	if m.FyPrime > 0 {
		return m.FyPrime
	}
	return m.Fy
}

// Validate rejects non-positive strengths. Moduli are optional and only
// rejected when negative.
func (m Material) Validate() error {
	if m.Fc <= 0 {
		return numeric.Domain("Material", "fc", m.Fc, "must be positive")
	}
	if m.Fy <= 0 {
		return numeric.Domain("Material", "fy", m.Fy, "must be positive")
	}
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"ft", m.Ft}, {"fy'", m.FyPrime}, {"fyv", m.Fyv}, {"Es", m.Es}, {"Ec", m.Ec},
	} {
		if v.val < 0 {
			return numeric.Domain("Material", v.name, v.val, "must be >= 0")
		}
	}
	return nil
}

// Warnings lists strengths outside the documented engineering ranges
func (m Material) Warnings(concrete, steel numeric.Range) []numeric.RangeWarning {
	var out []numeric.RangeWarning
	if w, bad := numeric.CheckRange("fc", m.Fc, concrete); bad {
		out = append(out, w)
	}
	if w, bad := numeric.CheckRange("fy", m.Fy, steel); bad {
		out = append(out, w)
	}
	if m.FyPrime > 0 {
		if w, bad := numeric.CheckRange("fy'", m.FyPrime, steel); bad {
			out = append(out, w)
		}
	}
	if m.Fyv > 0 {
		if w, bad := numeric.CheckRange("fyv", m.Fyv, steel); bad {
			out = append(out, w)
		}
	}
	return out
}

// Reinforcement describes longitudinal steel and stirrups
type Reinforcement struct {
	As         float64 // tension steel area (mm²)
	AsPrime    float64 // compression steel area (mm²)
	CoverPrime float64 // a's - cover to centroid of compression steel (mm)
	Asv        float64 // area of one stirrup leg (mm²)
	Legs       int     // n - number of stirrup legs
	S          float64 // stirrup spacing (mm)
}

// HasStirrups reports whether stirrups are defined
func (r Reinforcement) HasStirrups() bool {
	return r.Asv > 0
}

// Validate checks areas are non-negative and stirrups are complete
func (r Reinforcement) Validate() error {
	if r.As < 0 {
		return numeric.Domain("Reinforcement", "As", r.As, "must be >= 0")
	}
	if r.AsPrime < 0 {
		return numeric.Domain("Reinforcement", "As'", r.AsPrime, "must be >= 0")
	}
	if r.CoverPrime < 0 {
		return numeric.Domain("Reinforcement", "a's", r.CoverPrime, "must be >= 0")
	}
	if r.Asv < 0 {
		return numeric.Domain("Reinforcement", "Asv", r.Asv, "must be >= 0")
	}
	if r.HasStirrups() {
		if r.Legs < 1 {
			return numeric.Domain("Reinforcement", "n", float64(r.Legs), "must be >= 1 when stirrups are present")
		}
		if r.S <= 0 {
			return numeric.Domain("Reinforcement", "s", r.S, "must be positive when stirrups are present")
		}
	}
	return nil
}
