package flexure

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/rccalc/internal/numeric"
	"github.com/alexiusacademia/rccalc/internal/profile"
	"github.com/alexiusacademia/rccalc/internal/section"
)

// bisection steps for the neutral axis and the design steel scale
const solverSteps = 200

// PolygonSection is an arbitrary section analyzed with plane sections:
// strain εcu at the top fiber, an α1·fc block of depth β1·xn over the
// clipped outline and elastic-perfectly-plastic bars.
type PolygonSection struct {
	Name     string
	Shape    section.Shape
	Layers   []section.RebarLayer
	Material section.Material
	Profile  profile.Profile
}

// NewPolygonSection builds a section from a definition. m overrides the
// definition's materials so callers can apply grades first.
func NewPolygonSection(d section.Definition, m section.Material, p profile.Profile) *PolygonSection {
	layers := make([]section.RebarLayer, len(d.Reinforcement))
	copy(layers, d.Reinforcement)
	return &PolygonSection{Name: d.Name, Shape: d.Shape(), Layers: layers, Material: m, Profile: p}
}

// LayerResult is the state of one bar layer at ultimate
type LayerResult struct {
	section.RebarLayer
	Depth   float64 // from the top fiber (mm)
	Strain  float64 // compression positive
	Stress  float64 // MPa, compression positive
	Force   float64 // N, compression positive, net of displaced concrete
	Yielded bool
}

// PolygonResult holds the results of a polygon section analysis
type PolygonResult struct {
	Xn  float64 // Neutral axis depth (mm)
	X   float64 // Stress block depth β1·xn (mm)
	H0  float64 // Depth to the tension steel resultant (mm)
	Xi  float64
	XiB float64

	CompressionArea     float64 // mm²
	CompressionCentroid float64 // depth from top (mm)

	Cc float64 // Concrete block force (N)
	Cs float64 // Compression steel force (N)
	T  float64 // Tension steel force (N)

	Layers []LayerResult
	Mu     float64 // N·mm

	OverReinforced bool
	Warnings       []numeric.RangeWarning
	Message        string
}

func (s *PolygonSection) validate() error {
	d := section.Definition{Name: s.Name, Vertices: s.Shape.Vertices, Reinforcement: s.Layers,
		Fc: s.Material.Fc, Fy: s.Material.Fy, FyPrime: s.Material.FyPrime, Es: s.Material.Es}
	if err := d.Validate(); err != nil {
		return err
	}
	if s.Material.Es <= 0 {
		return numeric.Domain("PolygonSection", "Es", s.Material.Es, "must be positive")
	}
	return nil
}

// effectiveDepth returns the area-weighted depth of the layers below the
// gross centroid, the bars that act in tension under sagging moment.
func (s *PolygonSection) effectiveDepth() (float64, error) {
	top := s.Shape.Top()
	_, cy := s.Shape.Centroid()

	var area, moment float64
	for _, l := range s.Layers {
		if l.Y < cy {
			area += l.Area
			moment += l.Area * (top - l.Y)
		}
	}
	if area == 0 {
		return 0, fmt.Errorf("section %q has no reinforcement below its centroid", s.Name)
	}
	return moment / area, nil
}

// state evaluates forces for neutral axis depth xn and returns the net
// axial force, compression positive.
func (s *PolygonSection) state(xn float64, r *PolygonResult) float64 {
	m, p := s.Material, s.Profile
	top := s.Shape.Top()
	fyc := m.CompressionYield()
	epsY := m.Fy / m.Es

	r.Xn = xn
	r.X = math.Min(section.Beta1*xn, s.Shape.Height())
	block := s.Shape.ClipAbove(r.X)
	r.CompressionArea = block.Area()
	r.CompressionCentroid = 0
	if r.CompressionArea > 0 {
		_, cy := block.Centroid()
		r.CompressionCentroid = top - cy
	}
	r.Cc = p.Alpha1 * m.Fc * r.CompressionArea
	r.Cs, r.T = 0, 0

	net := r.Cc
	r.Layers = r.Layers[:0]
	for _, l := range s.Layers {
		lr := LayerResult{RebarLayer: l, Depth: top - l.Y}
		lr.Strain = section.EpsilonCU * (xn - lr.Depth) / xn
		lr.Stress = math.Max(math.Min(lr.Strain*m.Es, fyc), -m.Fy)
		lr.Yielded = math.Abs(lr.Strain) >= epsY

		lr.Force = l.Area * lr.Stress
		if lr.Stress > 0 && lr.Depth <= r.X {
			lr.Force -= l.Area * p.Alpha1 * m.Fc
		}
		if lr.Force >= 0 {
			r.Cs += lr.Force
		} else {
			r.T -= lr.Force
		}
		net += lr.Force
		r.Layers = append(r.Layers, lr)
	}
	return net
}

// Analyze finds the neutral axis from force equilibrium and returns the
// sagging moment capacity.
func (s *PolygonSection) Analyze() (*PolygonResult, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	h0, err := s.effectiveDepth()
	if err != nil {
		return nil, err
	}

	p := s.Profile
	result := &PolygonResult{
		H0:       h0,
		XiB:      p.XiB,
		Warnings: s.Material.Warnings(p.ConcreteRange, p.SteelRange),
	}

	// Net force rises with xn: all bars yield in tension as xn -> 0, and
	// the whole outline is in the block at xn = h/β1.
	height := s.Shape.Height()
	lo, hi := height*1e-9, height/section.Beta1
	for i := 0; i < solverSteps && hi-lo > height*1e-12; i++ {
		mid := (lo + hi) / 2
		if s.state(mid, result) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	s.state((lo+hi)/2, result)

	// moment of the internal couple about the top fiber
	mu := -result.Cc * result.CompressionCentroid
	for _, l := range result.Layers {
		mu -= l.Force * l.Depth
	}
	result.Mu = mu

	result.Xi = result.X / h0
	result.OverReinforced = section.IsOverReinforced(result.Xi, p.XiB)
	if result.OverReinforced {
		result.Message = fmt.Sprintf("Section is over-reinforced (ξ = %.3f > ξb = %.3f)", result.Xi, p.XiB)
	} else {
		result.Message = fmt.Sprintf("Section is under-reinforced (ξ = %.3f ≤ ξb = %.3f)", result.Xi, p.XiB)
	}
	return result, nil
}

// PolygonDesignResult holds the results of polygon section design
type PolygonDesignResult struct {
	M float64 // Design moment (N·mm)

	AsProvided float64 // Tension steel in the definition (mm²)
	AsRequired float64 // mm²
	AsMin      float64 // ρmin·b·h0 with b the width at h0 (mm²)
	Scale      float64 // AsRequired / AsProvided

	Analysis   *PolygonResult // At AsRequired
	IsAdequate bool
	Message    string
}

// Design scales the tension layers, keeping their proportions, until the
// capacity reaches m (N·mm). Compression layers are left as defined.
func (s *PolygonSection) Design(m float64) (*PolygonDesignResult, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if m <= 0 {
		return nil, numeric.Domain("PolygonSection.Design", "M", m, "must be positive")
	}
	h0, err := s.effectiveDepth()
	if err != nil {
		return nil, err
	}

	_, cy := s.Shape.Centroid()
	var tension []int
	result := &PolygonDesignResult{M: m}
	for i, l := range s.Layers {
		if l.Y < cy {
			tension = append(tension, i)
			result.AsProvided += l.Area
		}
	}
	result.AsMin = s.Profile.RhoMin * s.Shape.WidthAtDepth(h0) * h0

	trial := *s
	trial.Layers = make([]section.RebarLayer, len(s.Layers))
	capacity := func(k float64) (*PolygonResult, error) {
		copy(trial.Layers, s.Layers)
		for _, i := range tension {
			trial.Layers[i].Area *= k
		}
		return trial.Analyze()
	}

	// bracket the scale, the capacity is bounded by crushing of the outline
	lo, hi := 0.0, 1.0
	for {
		r, err := capacity(hi)
		if err != nil {
			return nil, err
		}
		if r.Mu >= m {
			break
		}
		if hi > 1e3 {
			result.Analysis = r
			result.Message = fmt.Sprintf("Section inadequate: M = %.3g N·mm cannot be reached by adding tension steel. Enlarge the section.", m)
			return result, nil
		}
		lo, hi = hi, hi*2
	}
	for i := 0; i < solverSteps && hi-lo > 1e-9*hi; i++ {
		mid := (lo + hi) / 2
		r, err := capacity(mid)
		if err != nil {
			return nil, err
		}
		if r.Mu < m {
			lo = mid
		} else {
			hi = mid
		}
	}

	result.AsRequired = math.Max(hi*result.AsProvided, result.AsMin)
	result.Scale = result.AsRequired / result.AsProvided
	if result.Analysis, err = capacity(result.Scale); err != nil {
		return nil, err
	}

	result.IsAdequate = !result.Analysis.OverReinforced
	if result.IsAdequate {
		result.Message = "Design OK - Section is under-reinforced"
		if result.AsRequired == result.AsMin {
			result.Message = "Design OK - Minimum reinforcement governs"
		}
	} else {
		result.Message = fmt.Sprintf("Section over-reinforced (ξ = %.3f > ξb = %.3f). Add compression steel or deepen the section.", result.Analysis.Xi, result.Analysis.XiB)
	}
	return result, nil
}
