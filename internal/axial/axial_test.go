package axial

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/rccalc/internal/numeric"
	"github.com/alexiusacademia/rccalc/internal/profile"
	"github.com/alexiusacademia/rccalc/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressionCapacityWorkedExample(t *testing.T) {
	nu, err := CompressionCapacity(14.3, 100000, 360, 1256, 0.9, profile.AxialFactor)
	require.NoError(t, err)
	assert.InDelta(t, 1.58e6, nu, 0.1e6)
	assert.InDelta(t, 0.81*(1.43e6+360*1256.0), nu, 1e-6)
}

func TestCompressionCapacityDomain(t *testing.T) {
	tests := []struct {
		name                    string
		fc, a, fyc, asc, phi, k float64
	}{
		{"zero fc", 0, 1e5, 360, 1256, 0.9, 0.9},
		{"zero area", 14.3, 0, 360, 1256, 0.9, 0.9},
		{"negative steel", 14.3, 1e5, 360, -1, 0.9, 0.9},
		{"phi above one", 14.3, 1e5, 360, 1256, 1.1, 0.9},
		{"zero phi", 14.3, 1e5, 360, 1256, 0, 0.9},
		{"zero factor", 14.3, 1e5, 360, 1256, 0.9, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompressionCapacity(tt.fc, tt.a, tt.fyc, tt.asc, tt.phi, tt.k)
			assert.True(t, errors.Is(err, numeric.ErrDomain))
		})
	}
}

func TestTensionCapacity(t *testing.T) {
	nt, err := TensionCapacity(360, 1256)
	require.NoError(t, err)
	assert.InDelta(t, 452200, nt, 1000)

	_, err = TensionCapacity(0, 1256)
	assert.Error(t, err)
	_, err = TensionCapacity(360, -1)
	assert.Error(t, err)
}

func TestStabilityFactor(t *testing.T) {
	curve := profile.DefaultStabilityCurve()
	phi, err := StabilityFactor(curve, 5.0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, phi)

	phi, err = StabilityFactor(curve, 20)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, phi, 1e-12)
}

func TestColumnAnalyze(t *testing.T) {
	c := &Column{
		B:        300,
		H:        400,
		Material: section.Material{Fc: 14.3, Fy: 360},
		AsPrime:  1256,
		Profile:  profile.Default(),
	}
	res, err := c.Analyze(4200, 1.2e6)
	require.NoError(t, err)

	assert.InDelta(t, 14, res.Slenderness, 1e-12)
	assert.InDelta(t, 0.92, res.Phi, 1e-12)
	assert.False(t, res.NetArea)
	assert.InDelta(t, 0.9*0.92*(14.3*120000+360*1256.0), res.Nu, 1e-6)
	assert.InDelta(t, 360*1256.0, res.Nt, 1e-9)
	assert.True(t, res.Adequate)
}

func TestColumnNetAreaAboveThreePercent(t *testing.T) {
	c := &Column{
		B:        300,
		H:        300,
		Material: section.Material{Fc: 14.3, Fy: 360},
		AsPrime:  3000,
		Profile:  profile.Default(),
	}
	res, err := c.Analyze(1200, 5e6)
	require.NoError(t, err)

	assert.True(t, res.NetArea)
	assert.Equal(t, 90000.0-3000, res.Area)
	assert.Equal(t, 1.0, res.Phi)
	assert.False(t, res.Adequate)
	assert.Contains(t, res.Message, "inadequate")
}

func TestColumnRejectsBadInput(t *testing.T) {
	c := &Column{B: 0, H: 300, Material: section.Material{Fc: 14.3, Fy: 360}, Profile: profile.Default()}
	_, err := c.Analyze(1200, 1e6)
	assert.True(t, errors.Is(err, numeric.ErrDomain))

	c.B = 300
	_, err = c.Analyze(-1, 1e6)
	assert.True(t, errors.Is(err, numeric.ErrDomain))
}

func TestColumnSlendernessUsesSmallerSide(t *testing.T) {
	m := section.Material{Fc: 14.3, Fy: 360}
	upright := &Column{B: 300, H: 400, Material: m, AsPrime: 1256, Profile: profile.Default()}
	swapped := &Column{B: 400, H: 300, Material: m, AsPrime: 1256, Profile: profile.Default()}

	a, err := upright.Analyze(6000, 1e6)
	require.NoError(t, err)
	b, err := swapped.Analyze(6000, 1e6)
	require.NoError(t, err)

	assert.InDelta(t, 20, b.Slenderness, 1e-12)
	assert.InDelta(t, 0.75, b.Phi, 1e-12)
	assert.Equal(t, a.Nu, b.Nu)
}
