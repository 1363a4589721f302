package flexure

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/rccalc/internal/numeric"
	"github.com/alexiusacademia/rccalc/internal/profile"
	"github.com/alexiusacademia/rccalc/internal/section"
)

// CompressionDepth returns x from T = C: fy·As = α1·fc·b·x
func CompressionDepth(b, as, fc, fy, alpha1 float64) (float64, error) {
	if alpha1*fc*b <= 0 {
		return 0, numeric.Domain("CompressionDepth", "alpha1*fc*b", alpha1*fc*b, "must be positive")
	}
	if fy <= 0 {
		return 0, numeric.Domain("CompressionDepth", "fy", fy, "must be positive")
	}
	if as < 0 {
		return 0, numeric.Domain("CompressionDepth", "As", as, "must be >= 0")
	}
	return fy * as / (alpha1 * fc * b), nil
}

// CapacitySingleRebar returns Mu = fy·As·(h0 - x/2) in N·mm.
// x is not capped at ξb·h0; use IsOverReinforced on the result.
func CapacitySingleRebar(b, h0, as, fc, fy, alpha1 float64) (float64, error) {
	if h0 <= 0 {
		return 0, numeric.Domain("CapacitySingleRebar", "h0", h0, "must be positive")
	}
	x, err := CompressionDepth(b, as, fc, fy, alpha1)
	if err != nil {
		return 0, err
	}
	return fy * as * (h0 - x/2), nil
}

// AreaFromCompressionDepth returns As = α1·fc·b·x/fy, the tension steel
// balancing a compression zone of depth x.
func AreaFromCompressionDepth(b, x, fc, fy, alpha1 float64) (float64, error) {
	if b <= 0 {
		return 0, numeric.Domain("AreaFromCompressionDepth", "b", b, "must be positive")
	}
	if x < 0 {
		return 0, numeric.Domain("AreaFromCompressionDepth", "x", x, "must be >= 0")
	}
	if fc <= 0 || alpha1 <= 0 {
		return 0, numeric.Domain("AreaFromCompressionDepth", "alpha1*fc", alpha1*fc, "must be positive")
	}
	if fy <= 0 {
		return 0, numeric.Domain("AreaFromCompressionDepth", "fy", fy, "must be positive")
	}
	return alpha1 * fc * b * x / fy, nil
}

// SinglyReinforced represents a singly reinforced rectangular beam section
type SinglyReinforced struct {
	Geometry section.Geometry
	Material section.Material
	Profile  profile.Profile
}

// NewSinglyReinforced creates a singly reinforced section
func NewSinglyReinforced(g section.Geometry, m section.Material, p profile.Profile) *SinglyReinforced {
	return &SinglyReinforced{Geometry: g, Material: m, Profile: p}
}

// AnalysisResult holds the results of section analysis
type AnalysisResult struct {
	// Compression zone
	X   float64 // Depth of compression zone (mm)
	Xi  float64 // Relative compression-zone height x/h0
	XiB float64 // Balanced ξb from the profile

	// Reinforcement ratios
	Rho    float64
	RhoMin float64
	RhoMax float64

	// Capacity
	Mu float64 // Moment capacity (N·mm)

	// Status
	OverReinforced bool
	MeetsMinReinf  bool
	MeetsMaxReinf  bool
	Warnings       []numeric.RangeWarning
	Message        string
}

func (b *SinglyReinforced) validate() error {
	if b.Geometry.B <= 0 || b.Geometry.H0 <= 0 {
		return fmt.Errorf("invalid beam dimensions: %w",
			numeric.Domain("SinglyReinforced", "b*h0", b.Geometry.B*b.Geometry.H0, "must be positive"))
	}
	return b.Material.Validate()
}

// Analyze calculates the moment capacity for a given tension steel area
func (b *SinglyReinforced) Analyze(as float64) (*AnalysisResult, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	if as <= 0 {
		return nil, numeric.Domain("SinglyReinforced.Analyze", "As", as, "must be positive")
	}

	g, m, p := b.Geometry, b.Material, b.Profile
	result := &AnalysisResult{
		XiB:      p.XiB,
		RhoMin:   p.RhoMin,
		RhoMax:   p.RhoMax,
		Warnings: m.Warnings(p.ConcreteRange, p.SteelRange),
	}

	var err error
	if result.X, err = CompressionDepth(g.B, as, m.Fc, m.Fy, p.Alpha1); err != nil {
		return nil, err
	}
	if result.Xi, err = section.RelativeCompressionZoneHeight(result.X, g.H0); err != nil {
		return nil, err
	}
	if result.Rho, err = section.RebarRatio(as, g.B, g.H0); err != nil {
		return nil, err
	}
	if result.Mu, err = CapacitySingleRebar(g.B, g.H0, as, m.Fc, m.Fy, p.Alpha1); err != nil {
		return nil, err
	}

	result.OverReinforced = section.IsOverReinforced(result.Xi, p.XiB)
	result.MeetsMinReinf = result.Rho >= p.RhoMin
	result.MeetsMaxReinf = result.Rho <= p.RhoMax

	// Build status message
	if result.OverReinforced {
		result.Message = fmt.Sprintf("Section is over-reinforced (ξ = %.3f > ξb = %.3f)", result.Xi, p.XiB)
	} else {
		result.Message = fmt.Sprintf("Section is under-reinforced (ξ = %.3f ≤ ξb = %.3f)", result.Xi, p.XiB)
	}
	if !result.MeetsMinReinf {
		result.Message += " | WARNING: Below minimum reinforcement"
	}
	if !result.MeetsMaxReinf {
		result.Message += " | WARNING: Exceeds maximum reinforcement"
	}

	return result, nil
}

// DesignResult holds the results of beam design
type DesignResult struct {
	M float64 // Design moment (N·mm)

	// Compression zone
	X   float64 // Required compression zone depth (mm)
	Xi  float64
	XiB float64

	// Reinforcement
	AsCalculated float64 // From equilibrium (mm²)
	AsMin        float64 // ρmin·b·h0 (mm²)
	AsRequired   float64 // max(AsCalculated, AsMin) (mm²)

	// Status
	OverReinforced bool
	IsAdequate     bool
	Warnings       []numeric.RangeWarning
	Message        string
}

// Design calculates the required tension steel for a design moment m (N·mm)
// by solving m = α1·fc·b·x·(h0 - x/2) for x.
func (b *SinglyReinforced) Design(m float64) (*DesignResult, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	if m <= 0 {
		return nil, numeric.Domain("SinglyReinforced.Design", "M", m, "must be positive")
	}

	g, mat, p := b.Geometry, b.Material, b.Profile
	result := &DesignResult{
		M:        m,
		XiB:      p.XiB,
		AsMin:    p.RhoMin * g.B * g.H0,
		Warnings: mat.Warnings(p.ConcreteRange, p.SteelRange),
	}

	// x = h0 - √(h0² - 2M/(α1·fc·b))
	disc := g.H0*g.H0 - 2*m/(p.Alpha1*mat.Fc*g.B)
	if disc < 0 {
		mMax := p.Alpha1 * mat.Fc * g.B * g.H0 * g.H0 / 2
		result.Message = fmt.Sprintf("Section inadequate: M = %.3g N·mm exceeds the concrete limit %.3g N·mm. Increase section size.", m, mMax)
		return result, nil
	}
	result.X = g.H0 - math.Sqrt(disc)
	result.Xi = result.X / g.H0

	var err error
	if result.AsCalculated, err = AreaFromCompressionDepth(g.B, result.X, mat.Fc, mat.Fy, p.Alpha1); err != nil {
		return nil, err
	}
	result.AsRequired = math.Max(result.AsCalculated, result.AsMin)

	result.OverReinforced = section.IsOverReinforced(result.Xi, p.XiB)
	result.IsAdequate = !result.OverReinforced

	if result.IsAdequate {
		result.Message = "Design OK - Section is under-reinforced"
		if result.AsCalculated < result.AsMin {
			result.Message = "Design OK - Minimum reinforcement governs"
		}
	} else {
		result.Message = fmt.Sprintf("Section over-reinforced (ξ = %.3f > ξb = %.3f). Consider doubly reinforced design or a deeper section.", result.Xi, p.XiB)
	}

	return result, nil
}
