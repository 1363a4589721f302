package profile

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/rccalc/internal/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	p := Default()
	require.NoError(t, p.Validate())
	assert.Equal(t, 1.0, p.Alpha1)
	assert.Equal(t, 0.9, p.AxialFactor)
	assert.Equal(t, 10.0, p.ConcreteRange.Min)
	assert.Equal(t, 500.0, p.SteelRange.Max)
}

func TestValidateRejectsBadConstants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Profile)
	}{
		{"alpha1 zero", func(p *Profile) { p.Alpha1 = 0 }},
		{"axial factor above one", func(p *Profile) { p.AxialFactor = 1.2 }},
		{"xi_b one", func(p *Profile) { p.XiB = 1 }},
		{"rho max below min", func(p *Profile) { p.RhoMax = p.RhoMin / 2 }},
		{"alpha cv negative", func(p *Profile) { p.ShearAlphaCV = -0.7 }},
		{"inverted concrete range", func(p *Profile) { p.ConcreteRange.Min = 60 }},
		{"empty stability table", func(p *Profile) { p.Stability.Points = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestStabilityFactorSaturation(t *testing.T) {
	c := DefaultStabilityCurve()
	for _, x := range []float64{0, 1, 2.5, 4.99, 5.0} {
		phi, err := c.Factor(x)
		require.NoError(t, err)
		assert.Equal(t, 1.0, phi, "slenderness %g", x)
	}
	for _, x := range []float64{5.0001, 6, 10, 20, 50, 80} {
		phi, err := c.Factor(x)
		require.NoError(t, err)
		assert.Less(t, phi, 1.0, "slenderness %g", x)
	}
}

func TestStabilityFactorMonotonic(t *testing.T) {
	c := DefaultStabilityCurve()
	prev := 1.0
	for x := 0.0; x <= 60; x += 0.25 {
		phi, err := c.Factor(x)
		require.NoError(t, err)
		assert.LessOrEqual(t, phi, prev, "slenderness %g", x)
		prev = phi
	}
}

func TestStabilityFactorTableValues(t *testing.T) {
	c := DefaultStabilityCurve()
	tests := []struct {
		x, want float64
	}{
		{10, 0.98},
		{11, 0.965},
		{20, 0.75},
		{25, 0.625},
		{50, 0.19},
		{70, 0.19},
		{7.5, 0.99},
	}
	for _, tt := range tests {
		phi, err := c.Factor(tt.x)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, phi, 1e-9, "slenderness %g", tt.x)
	}
}

func TestStabilityFactorNegative(t *testing.T) {
	_, err := DefaultStabilityCurve().Factor(-1)
	assert.True(t, errors.Is(err, numeric.ErrDomain))

	_, err = DefaultStabilityCurve().Factor(math.NaN())
	assert.True(t, errors.Is(err, numeric.ErrDomain))
}

func TestStabilityCurveValidate(t *testing.T) {
	bad := StabilityCurve{Threshold: 8, Points: []StabilityPoint{{10, 0.9}, {12, 0.95}}}
	assert.Error(t, bad.Validate())

	bad = StabilityCurve{Threshold: 8, Points: []StabilityPoint{{8, 0.9}}}
	assert.Error(t, bad.Validate())

	good := StabilityCurve{Threshold: 8, Points: []StabilityPoint{{10, 0.98}, {12, 0.95}}}
	assert.NoError(t, good.Validate())
}

func TestGoverningCombination(t *testing.T) {
	effects := LoadEffects{Dead: 50, Live: 30}
	mu, combo := Governing(effects, DefaultCombinations())
	assert.InDelta(t, 1.3*50+1.5*30, mu, 1e-9)
	assert.Equal(t, "1", combo.ID)

	effects = LoadEffects{Dead: 10, Live: 5, Wind: 40}
	mu, combo = Governing(effects, DefaultCombinations())
	assert.InDelta(t, 1.3*10+1.05*5+1.5*40, mu, 1e-9)
	assert.Equal(t, "3", combo.ID)
}

func TestParseOverlaysDefaults(t *testing.T) {
	doc := []byte(`
name: C60-HRB500
alpha1: 0.98
xi_b: 0.482
concrete_range:
  min: 15
  max: 80
`)
	p, err := Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, "C60-HRB500", p.Name)
	assert.Equal(t, 0.98, p.Alpha1)
	assert.Equal(t, 0.482, p.XiB)
	assert.Equal(t, 80.0, p.ConcreteRange.Max)
	assert.Equal(t, AxialFactor, p.AxialFactor)
	assert.Equal(t, DefaultStabilityCurve(), p.Stability)
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte("alpha1: 1.5\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("alpha1: [1, 2\n"))
	assert.Error(t, err)
}

func TestLoadFromFileRoundTrip(t *testing.T) {
	p := Default()
	p.Name = "custom"
	p.Stability = StabilityCurve{Threshold: 8, Points: []StabilityPoint{{10, 0.98}, {12, 0.95}}}

	data, err := Marshal(p)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
