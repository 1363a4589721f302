package flexure

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/rccalc/internal/numeric"
	"github.com/alexiusacademia/rccalc/internal/profile"
	"github.com/alexiusacademia/rccalc/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// C30 concrete with HRB400-class steel at design strengths
var c30 = section.Material{Fc: 14.3, Ft: 1.43, Fy: 360, Fyv: 270, Es: 2e5, Ec: 3e4}

func beam200x500(t *testing.T, cover float64) section.Geometry {
	t.Helper()
	g, err := section.NewGeometry(200, 500, cover, 6000)
	require.NoError(t, err)
	return g
}

func TestCapacitySingleRebarWorkedExample(t *testing.T) {
	mu, err := CapacitySingleRebar(200, 460, 1256, 14.3, 360, profile.Alpha1)
	require.NoError(t, err)
	assert.InDelta(t, 172.5e6, mu, 5e6)
	assert.Greater(t, mu, 0.0)
}

func TestCapacityIncreasesWithSteel(t *testing.T) {
	const b, h0, fc, fy = 200.0, 460.0, 14.3, 360.0
	limit := profile.Alpha1 * fc * b * h0 / fy

	prev := 0.0
	for as := 50.0; as < limit; as += 50 {
		mu, err := CapacitySingleRebar(b, h0, as, fc, fy, profile.Alpha1)
		require.NoError(t, err)
		assert.Greater(t, mu, prev, "As = %g", as)
		prev = mu
	}
}

func TestCapacitySingleRebarDomain(t *testing.T) {
	tests := []struct {
		name                 string
		b, h0, as, fc, fy, a float64
	}{
		{"zero width", 0, 460, 1256, 14.3, 360, 1},
		{"zero fc", 200, 460, 1256, 0, 360, 1},
		{"negative h0", 200, -1, 1256, 14.3, 360, 1},
		{"zero fy", 200, 460, 1256, 14.3, 0, 1},
		{"negative steel", 200, 460, -1, 14.3, 360, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CapacitySingleRebar(tt.b, tt.h0, tt.as, tt.fc, tt.fy, tt.a)
			assert.True(t, errors.Is(err, numeric.ErrDomain))
		})
	}
}

func TestAreaFromCompressionDepthInvertsDepth(t *testing.T) {
	x, err := CompressionDepth(200, 1256, 14.3, 360, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 158.1, x, 0.05)

	as, err := AreaFromCompressionDepth(200, x, 14.3, 360, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 1256, as, 1e-9)

	_, err = AreaFromCompressionDepth(200, 100, 14.3, 0, 1.0)
	assert.True(t, errors.Is(err, numeric.ErrDomain))
	_, err = AreaFromCompressionDepth(200, -1, 14.3, 360, 1.0)
	assert.True(t, errors.Is(err, numeric.ErrDomain))
}

func TestSinglyAnalyzeUnderReinforced(t *testing.T) {
	b := NewSinglyReinforced(beam200x500(t, 40), c30, profile.Default())
	res, err := b.Analyze(1256)
	require.NoError(t, err)

	assert.InDelta(t, 158.1, res.X, 0.05)
	assert.InDelta(t, 158.1/460, res.Xi, 1e-3)
	assert.InDelta(t, 0.013652, res.Rho, 1e-6)
	assert.InDelta(t, 172.5e6, res.Mu, 5e6)
	assert.False(t, res.OverReinforced)
	assert.True(t, res.MeetsMinReinf)
	assert.True(t, res.MeetsMaxReinf)
	assert.Empty(t, res.Warnings)
	assert.Contains(t, res.Message, "under-reinforced")
}

func TestSinglyAnalyzeOverReinforced(t *testing.T) {
	b := NewSinglyReinforced(beam200x500(t, 40), c30, profile.Default())
	res, err := b.Analyze(3000)
	require.NoError(t, err)

	assert.True(t, res.OverReinforced)
	assert.False(t, res.MeetsMaxReinf)
	// the equilibrium result is still returned
	expected, err := CapacitySingleRebar(200, 460, 3000, 14.3, 360, 1.0)
	require.NoError(t, err)
	assert.Equal(t, expected, res.Mu)
	assert.Contains(t, res.Message, "over-reinforced")
}

func TestSinglyAnalyzeRangeWarning(t *testing.T) {
	m := c30
	m.Fc = 60
	b := NewSinglyReinforced(beam200x500(t, 40), m, profile.Default())
	res, err := b.Analyze(1256)
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "fc", res.Warnings[0].Param)
}

func TestSinglyAnalyzeRejectsBadInput(t *testing.T) {
	b := NewSinglyReinforced(beam200x500(t, 40), c30, profile.Default())
	_, err := b.Analyze(0)
	assert.Error(t, err)

	b.Material.Fc = 0
	_, err = b.Analyze(1256)
	assert.True(t, errors.Is(err, numeric.ErrDomain))
}

func TestSinglyDesign(t *testing.T) {
	b := NewSinglyReinforced(beam200x500(t, 40), c30, profile.Default())
	res, err := b.Design(150e6)
	require.NoError(t, err)

	require.True(t, res.IsAdequate)
	assert.InDelta(t, 133.3, res.X, 0.1)
	assert.Equal(t, res.AsCalculated, res.AsRequired)

	mu, err := CapacitySingleRebar(200, 460, res.AsRequired, 14.3, 360, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 150e6, mu, 1)
}

func TestSinglyDesignMinimumGoverns(t *testing.T) {
	b := NewSinglyReinforced(beam200x500(t, 40), c30, profile.Default())
	res, err := b.Design(10e6)
	require.NoError(t, err)

	assert.True(t, res.IsAdequate)
	assert.Less(t, res.AsCalculated, res.AsMin)
	assert.InDelta(t, 0.002*200*460, res.AsRequired, 1e-9)
	assert.Contains(t, res.Message, "Minimum")
}

func TestSinglyDesignOverReinforced(t *testing.T) {
	b := NewSinglyReinforced(beam200x500(t, 40), c30, profile.Default())
	res, err := b.Design(250e6)
	require.NoError(t, err)
	assert.True(t, res.OverReinforced)
	assert.False(t, res.IsAdequate)
	assert.Greater(t, res.Xi, profile.XiB)
}

func TestSinglyDesignExceedsConcrete(t *testing.T) {
	b := NewSinglyReinforced(beam200x500(t, 40), c30, profile.Default())
	res, err := b.Design(400e6)
	require.NoError(t, err)
	assert.False(t, res.IsAdequate)
	assert.Zero(t, res.AsRequired)
	assert.Contains(t, res.Message, "inadequate")

	_, err = b.Design(-1)
	assert.Error(t, err)
}

func TestDoublyAnalyze(t *testing.T) {
	d := NewDoublyReinforced(beam200x500(t, 60), c30, profile.Default())
	r := section.Reinforcement{As: 1964, AsPrime: 402, CoverPrime: 35}
	res, err := d.Analyze(r)
	require.NoError(t, err)

	x := (360*1964.0 - 360*402.0) / (14.3 * 200)
	assert.InDelta(t, x, res.X, 1e-9)
	assert.True(t, res.CompressionSteelEffective)
	assert.False(t, res.OverReinforced)

	want := 14.3*200*x*(440-x/2) + 360*402*(440-35.0)
	assert.InDelta(t, want, res.Mu, 1e-3)
	assert.InDelta(t, res.MuConcrete+res.MuSteel, res.Mu, 1e-9)
}

func TestDoublyAnalyzeShallowCompressionZone(t *testing.T) {
	d := NewDoublyReinforced(beam200x500(t, 60), c30, profile.Default())
	res, err := d.Analyze(section.Reinforcement{As: 603, AsPrime: 603, CoverPrime: 40})
	require.NoError(t, err)

	assert.False(t, res.CompressionSteelEffective)
	assert.InDelta(t, 360*603*(440-40.0), res.Mu, 1e-6)
}

func TestDoublyWithoutCompressionSteelMatchesSingly(t *testing.T) {
	g := beam200x500(t, 40)
	d := NewDoublyReinforced(g, c30, profile.Default())
	res, err := d.Analyze(section.Reinforcement{As: 1256})
	require.NoError(t, err)

	single, err := CapacitySingleRebar(g.B, g.H0, 1256, c30.Fc, c30.Fy, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, single, res.Mu, 1e-3)
}

func TestDoublyRejectsBadCover(t *testing.T) {
	d := NewDoublyReinforced(beam200x500(t, 60), c30, profile.Default())
	_, err := d.Analyze(section.Reinforcement{As: 1964, AsPrime: 402})
	assert.True(t, errors.Is(err, numeric.ErrDomain))

	_, err = d.Analyze(section.Reinforcement{As: 0, AsPrime: 402, CoverPrime: 35})
	assert.Error(t, err)
}

func TestDoublyDesign(t *testing.T) {
	p := profile.Default()
	d := NewDoublyReinforced(beam200x500(t, 40), c30, p)
	res, err := d.Design(300e6, 40)
	require.NoError(t, err)

	muMax := 14.3 * 200 * 460 * 460 * 0.518 * (1 - 0.5*0.518)
	assert.InDelta(t, muMax, res.MuSinglyMax, 1e-3)
	assert.True(t, res.RequiresCompSteel)
	assert.True(t, res.IsAdequate)
	assert.InDelta(t, 0.518*460, res.X, 1e-9)

	asPrime := (300e6 - muMax) / (360 * (460 - 40.0))
	assert.InDelta(t, asPrime, res.AsPrime, 1e-6)
	assert.InDelta(t, 447.8, res.AsPrime, 0.5)
	assert.InDelta(t, (14.3*200*0.518*460+360*asPrime)/360, res.As, 1e-6)
}

func TestDoublyDesignRoundTrip(t *testing.T) {
	d := NewDoublyReinforced(beam200x500(t, 40), c30, profile.Default())
	res, err := d.Design(300e6, 40)
	require.NoError(t, err)

	back, err := d.Analyze(section.Reinforcement{As: res.As, AsPrime: res.AsPrime, CoverPrime: 40})
	require.NoError(t, err)
	assert.InDelta(t, res.X, back.X, 1e-6)
	assert.True(t, back.CompressionSteelEffective)
	assert.InDelta(t, 300e6, back.Mu, 1)
}

func TestDoublyDesignSinglyEnough(t *testing.T) {
	g := beam200x500(t, 40)
	res, err := NewDoublyReinforced(g, c30, profile.Default()).Design(150e6, 40)
	require.NoError(t, err)

	singly, err := NewSinglyReinforced(g, c30, profile.Default()).Design(150e6)
	require.NoError(t, err)

	assert.False(t, res.RequiresCompSteel)
	assert.Zero(t, res.AsPrime)
	assert.Equal(t, singly.AsRequired, res.As)
	assert.True(t, res.IsAdequate)
}

func TestDoublyDesignShallowSection(t *testing.T) {
	g, err := section.NewGeometry(200, 200, 40, 0)
	require.NoError(t, err)
	res, err := NewDoublyReinforced(g, c30, profile.Default()).Design(60e6, 60)
	require.NoError(t, err)

	assert.True(t, res.RequiresCompSteel)
	assert.False(t, res.IsAdequate)
	assert.Contains(t, res.Message, "2a's")
}

func TestDoublyDesignRejectsBadInput(t *testing.T) {
	d := NewDoublyReinforced(beam200x500(t, 40), c30, profile.Default())
	_, err := d.Design(0, 40)
	assert.True(t, errors.Is(err, numeric.ErrDomain))
	_, err = d.Design(300e6, 460)
	assert.True(t, errors.Is(err, numeric.ErrDomain))
}
