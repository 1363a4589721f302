package prestress

import (
	"math"

	"github.com/alexiusacademia/rccalc/internal/numeric"
)

// Minimum total losses used in design (GB 50010 Section 10.2.2)
const (
	MinTotalLossPretensioned  = 100.0
	MinTotalLossPostTensioned = 80.0
)

// Losses collects the individual loss components (MPa)
type Losses struct {
	Anchorage         float64 // σl1
	Friction          float64 // σl2
	Temperature       float64 // σl3
	Relaxation        float64 // σl4
	CreepShrinkage    float64 // σl5
	ElasticShortening float64 // staged post-tensioning
}

// Validate requires every component to be >= 0
func (l Losses) Validate() error {
	components := []struct {
		name  string
		value float64
	}{
		{"sigma_l1", l.Anchorage},
		{"sigma_l2", l.Friction},
		{"sigma_l3", l.Temperature},
		{"sigma_l4", l.Relaxation},
		{"sigma_l5", l.CreepShrinkage},
		{"elastic_shortening", l.ElasticShortening},
	}
	for _, c := range components {
		if c.value < 0 || math.IsNaN(c.value) {
			return numeric.Domain("Losses", c.name, c.value, "must be >= 0")
		}
	}
	return nil
}

// Total is the plain sum of all components
func (l Losses) Total() float64 {
	return TotalLoss(l.Anchorage, l.Friction, l.Temperature, l.Relaxation, l.CreepShrinkage) + l.ElasticShortening
}

// FirstStage returns the losses occurring before transfer (pretensioned)
// or before grouting (post-tensioned).
func (l Losses) FirstStage(method Tensioning) float64 {
	if method == Pretensioned {
		return l.Anchorage + l.Friction + l.Temperature + l.Relaxation
	}
	return l.Anchorage + l.Friction + l.ElasticShortening
}

// SecondStage returns the remaining long-term losses
func (l Losses) SecondStage(method Tensioning) float64 {
	if method == Pretensioned {
		return l.CreepShrinkage + l.ElasticShortening
	}
	return l.Relaxation + l.CreepShrinkage
}

// DesignTotal is Total raised to the code minimum for the tensioning method
func (l Losses) DesignTotal(method Tensioning) float64 {
	minimum := MinTotalLossPostTensioned
	if method == Pretensioned {
		minimum = MinTotalLossPretensioned
	}
	return math.Max(l.Total(), minimum)
}

// State is a tendon's jacking stress and its losses
type State struct {
	SigmaCon float64 // σcon (MPa)
	Method   Tensioning
	Losses   Losses
}

// Effective returns σpe = σcon - DesignTotal
func (s State) Effective() (float64, error) {
	if err := s.Losses.Validate(); err != nil {
		return 0, err
	}
	return EffectivePrestress(s.SigmaCon, s.Losses.DesignTotal(s.Method))
}

// AfterFirstStage returns σcon minus the first-stage losses
func (s State) AfterFirstStage() (float64, error) {
	if err := s.Losses.Validate(); err != nil {
		return 0, err
	}
	return EffectivePrestress(s.SigmaCon, s.Losses.FirstStage(s.Method))
}
