package profile

// LoadCombination represents a strength load combination
// Based on GB 50009-2012 Section 3.2 with the 2018 unified partial factors
type LoadCombination struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	// Load factors for each load type
	Dead float64 `yaml:"dead"` // G - permanent load
	Live float64 `yaml:"live"` // Q - variable (floor) load
	Wind float64 `yaml:"wind"` // W - wind load
}

// DefaultCombinations are the basic combinations for gravity and wind
func DefaultCombinations() []LoadCombination {
	return []LoadCombination{
		{ID: "1", Description: "1.3G + 1.5Q", Dead: 1.3, Live: 1.5},
		{ID: "2", Description: "1.3G + 1.5Q + 0.6(1.5W)", Dead: 1.3, Live: 1.5, Wind: 0.9},
		{ID: "3", Description: "1.3G + 1.5W + 0.7(1.5Q)", Dead: 1.3, Live: 1.05, Wind: 1.5},
		{ID: "4", Description: "1.0G + 1.5W", Dead: 1.0, Wind: 1.5},
	}
}

// LoadEffects holds unfactored effects (moment, shear or axial force) per load type.
// Units are whatever the caller uses, the combination is linear.
type LoadEffects struct {
	Dead float64
	Live float64
	Wind float64
}

// Factored calculates the factored effect for the combination
func (lc LoadCombination) Factored(e LoadEffects) float64 {
	return lc.Dead*e.Dead + lc.Live*e.Live + lc.Wind*e.Wind
}

// Governing finds the combination with the largest factored effect.
// Ties keep the earlier combination.
func Governing(e LoadEffects, combinations []LoadCombination) (float64, LoadCombination) {
	var maxEffect float64
	var governing LoadCombination

	for i, combo := range combinations {
		v := combo.Factored(e)
		if i == 0 || v > maxEffect {
			maxEffect = v
			governing = combo
		}
	}

	return maxEffect, governing
}
