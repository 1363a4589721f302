package flexure

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/rccalc/internal/numeric"
	"github.com/alexiusacademia/rccalc/internal/profile"
	"github.com/alexiusacademia/rccalc/internal/section"
)

// DoublyReinforced represents a doubly reinforced rectangular beam section
type DoublyReinforced struct {
	Geometry section.Geometry
	Material section.Material
	Profile  profile.Profile
}

// NewDoublyReinforced creates a doubly reinforced section
func NewDoublyReinforced(g section.Geometry, m section.Material, p profile.Profile) *DoublyReinforced {
	return &DoublyReinforced{Geometry: g, Material: m, Profile: p}
}

// DoublyAnalysisResult holds the results of doubly reinforced analysis
type DoublyAnalysisResult struct {
	// Compression zone
	X   float64 // Depth of compression zone (mm)
	Xi  float64
	XiB float64

	// Moment components (N·mm)
	MuConcrete float64 // Concrete couple α1·fc·b·x·(h0 - x/2)
	MuSteel    float64 // Steel couple f'y·A's·(h0 - a's)
	Mu         float64

	// Reinforcement ratios
	Rho     float64
	RhoComp float64

	// Compression steel is only counted when x >= 2a's
	CompressionSteelEffective bool

	// Status
	OverReinforced bool
	MeetsMinReinf  bool
	Warnings       []numeric.RangeWarning
	Message        string
}

// Analyze calculates moment capacity for tension steel As, compression
// steel As' and its cover a's taken from r.
func (b *DoublyReinforced) Analyze(r section.Reinforcement) (*DoublyAnalysisResult, error) {
	g, m, p := b.Geometry, b.Material, b.Profile

	if g.B <= 0 || g.H0 <= 0 {
		return nil, fmt.Errorf("invalid beam dimensions: %w",
			numeric.Domain("DoublyReinforced", "b*h0", g.B*g.H0, "must be positive"))
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if r.As <= 0 {
		return nil, numeric.Domain("DoublyReinforced.Analyze", "As", r.As, "must be positive")
	}
	if r.AsPrime > 0 && (r.CoverPrime <= 0 || r.CoverPrime >= g.H0) {
		return nil, numeric.Domain("DoublyReinforced.Analyze", "a's", r.CoverPrime, "must be in (0, h0)")
	}

	fyc := m.CompressionYield()
	result := &DoublyAnalysisResult{
		XiB:      p.XiB,
		Rho:      r.As / (g.B * g.H0),
		RhoComp:  r.AsPrime / (g.B * g.H0),
		Warnings: m.Warnings(p.ConcreteRange, p.SteelRange),
	}
	result.MeetsMinReinf = result.Rho >= p.RhoMin

	// α1·fc·b·x = fy·As - f'y·A's
	result.X = (m.Fy*r.As - fyc*r.AsPrime) / (p.Alpha1 * m.Fc * g.B)
	result.Xi = result.X / g.H0
	result.OverReinforced = section.IsOverReinforced(result.Xi, p.XiB)

	leverArm := g.H0 - r.CoverPrime
	if r.AsPrime > 0 && result.X < 2*r.CoverPrime {
		// Compression steel does not reach yield; take moments about it
		result.Mu = m.Fy * r.As * leverArm
		result.Message = fmt.Sprintf("x = %.1f mm < 2a's = %.1f mm: compression steel not yielded, Mu = fy·As·(h0 - a's)", result.X, 2*r.CoverPrime)
	} else {
		result.CompressionSteelEffective = r.AsPrime > 0
		result.MuConcrete = p.Alpha1 * m.Fc * g.B * result.X * (g.H0 - result.X/2)
		if r.AsPrime > 0 {
			result.MuSteel = fyc * r.AsPrime * leverArm
		}
		result.Mu = result.MuConcrete + result.MuSteel
		result.Message = "Compression steel yields"
		if r.AsPrime == 0 {
			result.Message = "No compression steel, singly reinforced capacity"
		}
	}

	if result.OverReinforced {
		result.Message += fmt.Sprintf(" | WARNING: over-reinforced (ξ = %.3f > ξb = %.3f)", result.Xi, p.XiB)
	}
	if !result.MeetsMinReinf {
		result.Message += " | WARNING: Below minimum reinforcement"
	}

	return result, nil
}

// DoublyDesignResult holds the results of doubly reinforced design
type DoublyDesignResult struct {
	M float64 // Design moment (N·mm)

	// Limit of the singly reinforced section, α1·fc·b·h0²·ξb·(1 - 0.5ξb)
	MuSinglyMax       float64
	RequiresCompSteel bool

	// Compression zone
	X   float64
	Xi  float64
	XiB float64

	// Reinforcement (mm²)
	As      float64
	AsPrime float64
	AsMin   float64

	IsAdequate bool
	Warnings   []numeric.RangeWarning
	Message    string
}

// Design calculates tension and compression steel for a design moment m
// (N·mm) with compression steel cover a's. While m fits a singly reinforced
// section no compression steel is used. Otherwise x is fixed at ξb·h0 and
//
//	As' = (M - α1·fc·b·h0²·ξb·(1 - 0.5ξb)) / (f'y·(h0 - a's))
//	As  = (α1·fc·b·ξb·h0 + f'y·As') / fy
func (b *DoublyReinforced) Design(m, coverPrime float64) (*DoublyDesignResult, error) {
	g, mat, p := b.Geometry, b.Material, b.Profile

	if g.B <= 0 || g.H0 <= 0 {
		return nil, numeric.Domain("DoublyReinforced.Design", "b*h0", g.B*g.H0, "must be positive")
	}
	if err := mat.Validate(); err != nil {
		return nil, err
	}
	if m <= 0 {
		return nil, numeric.Domain("DoublyReinforced.Design", "M", m, "must be positive")
	}
	if coverPrime <= 0 || coverPrime >= g.H0 {
		return nil, numeric.Domain("DoublyReinforced.Design", "a's", coverPrime, "must be in (0, h0)")
	}

	result := &DoublyDesignResult{
		M:           m,
		XiB:         p.XiB,
		AsMin:       p.RhoMin * g.B * g.H0,
		MuSinglyMax: p.Alpha1 * mat.Fc * g.B * g.H0 * g.H0 * p.XiB * (1 - 0.5*p.XiB),
		Warnings:    mat.Warnings(p.ConcreteRange, p.SteelRange),
	}

	if m <= result.MuSinglyMax {
		singly, err := NewSinglyReinforced(g, mat, p).Design(m)
		if err != nil {
			return nil, err
		}
		result.X, result.Xi = singly.X, singly.Xi
		result.As = singly.AsRequired
		result.IsAdequate = singly.IsAdequate
		result.Message = "Singly reinforced section is adequate, no compression steel required"
		return result, nil
	}

	result.RequiresCompSteel = true
	result.X = p.XiB * g.H0
	result.Xi = p.XiB
	if result.X < 2*coverPrime {
		result.Message = fmt.Sprintf("Section inadequate: ξb·h0 = %.1f mm < 2a's = %.1f mm, compression steel cannot yield. Increase section depth.", result.X, 2*coverPrime)
		return result, nil
	}

	fyc := mat.CompressionYield()
	result.AsPrime = (m - result.MuSinglyMax) / (fyc * (g.H0 - coverPrime))
	result.As = math.Max((p.Alpha1*mat.Fc*g.B*result.X+fyc*result.AsPrime)/mat.Fy, result.AsMin)
	result.IsAdequate = true
	result.Message = fmt.Sprintf("Doubly reinforced design OK - x = ξb·h0 = %.1f mm, compression steel yields", result.X)

	return result, nil
}
