package prestress

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/alexiusacademia/rccalc/internal/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchorageLossWorkedExample(t *testing.T) {
	l1, err := AnchorageLoss(5, 200000, 10000)
	require.NoError(t, err)
	assert.InDelta(t, 100, l1, 1)
}

func TestAnchorageLossDomain(t *testing.T) {
	for _, l := range []float64{0, -10} {
		_, err := AnchorageLoss(5, 200000, l)
		assert.True(t, errors.Is(err, numeric.ErrDomain), "l = %g", l)
	}
	_, err := AnchorageLoss(-1, 200000, 10000)
	assert.Error(t, err)
}

func TestRelaxationLoss(t *testing.T) {
	l4, err := RelaxationLoss(0.05, 1395)
	require.NoError(t, err)
	assert.InDelta(t, 69.75, l4, 1e-9)

	_, err = RelaxationLoss(1.5, 1395)
	assert.Error(t, err)
}

func TestRelaxationCoefficient(t *testing.T) {
	tests := []struct {
		sigmaCon, want float64
	}{
		{0.4 * 1860, 0},
		{0.5 * 1860, 0},
		{0.6 * 1860, 0.0125},
		{0.75 * 1860, 0.035},
	}
	for _, tt := range tests {
		psi, err := RelaxationCoefficient(tt.sigmaCon, 1860)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, psi, 1e-9, "sigma_con = %g", tt.sigmaCon)
	}

	_, err := RelaxationCoefficient(0.85*1860, 1860)
	assert.True(t, errors.Is(err, numeric.ErrDomain))
	_, err = RelaxationCoefficient(1000, 0)
	assert.Error(t, err)
}

func TestFrictionLoss(t *testing.T) {
	l2, err := FrictionLoss(1395, 0.0015, 20, 0.25, 0.2)
	require.NoError(t, err)
	assert.InDelta(t, 1395*(1-math.Exp(-0.08)), l2, 1e-9)

	zero, err := FrictionLoss(1395, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, zero)

	_, err = FrictionLoss(1395, -0.001, 20, 0.25, 0.2)
	assert.Error(t, err)
}

func TestTemperatureLoss(t *testing.T) {
	l3, err := TemperatureLoss(20)
	require.NoError(t, err)
	assert.Equal(t, 40.0, l3)

	_, err = TemperatureLoss(-5)
	assert.Error(t, err)
}

func TestElasticShorteningLoss(t *testing.T) {
	l, err := ElasticShorteningLoss(5.8, 8)
	require.NoError(t, err)
	assert.InDelta(t, 46.4, l, 1e-9)

	_, err = ElasticShorteningLoss(0, 8)
	assert.Error(t, err)
}

func TestCreepShrinkageLoss(t *testing.T) {
	pre, err := CreepShrinkageLoss(Pretensioned, 10, 40, 0.005)
	require.NoError(t, err)
	assert.InDelta(t, (60+340*0.25)/1.075, pre, 1e-9)

	post, err := CreepShrinkageLoss(PostTensioned, 10, 40, 0.005)
	require.NoError(t, err)
	assert.InDelta(t, (55+300*0.25)/1.075, post, 1e-9)
	assert.Less(t, post, pre)

	_, err = CreepShrinkageLoss(PostTensioned, 25, 40, 0.005)
	assert.True(t, errors.Is(err, numeric.ErrDomain))

	_, err = CreepShrinkageLoss(Tensioning(7), 10, 40, 0.005)
	assert.Error(t, err)
}

func TestTotalAndEffectiveWorkedExample(t *testing.T) {
	total := TotalLoss(100, 50, 20, 70, 100)
	assert.Equal(t, 340.0, total)

	pe, err := EffectivePrestress(1395, total)
	require.NoError(t, err)
	assert.Equal(t, 1055.0, pe)
}

func TestTotalLossPermutationInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		v := []float64{rng.Float64() * 150, rng.Float64() * 80, rng.Float64() * 40, rng.Float64() * 100, rng.Float64() * 120}
		want := TotalLoss(v[0], v[1], v[2], v[3], v[4])

		perm := rng.Perm(5)
		got := TotalLoss(v[perm[0]], v[perm[1]], v[perm[2]], v[perm[3]], v[perm[4]])
		assert.Equal(t, want, got)

		pe, err := EffectivePrestress(1860, want)
		require.NoError(t, err)
		assert.Equal(t, 1860-want, pe)
	}
}

func TestTotalLossAcceptsUnusedZeros(t *testing.T) {
	assert.Equal(t, 100.0, TotalLoss(100, 0, 0, 0, 0))
	assert.Equal(t, 0.0, TotalLoss(0, 0, 0, 0, 0))
}

func TestEffectivePrestressOverLoss(t *testing.T) {
	_, err := EffectivePrestress(300, 340)
	assert.True(t, errors.Is(err, numeric.ErrDomain))

	pe, err := EffectivePrestress(340, 340)
	require.NoError(t, err)
	assert.Zero(t, pe)

	_, err = EffectivePrestress(1395, -1)
	assert.Error(t, err)
}

func TestLossesStages(t *testing.T) {
	l := Losses{Anchorage: 100, Friction: 50, Temperature: 20, Relaxation: 70, CreepShrinkage: 100}
	assert.Equal(t, 340.0, l.Total())

	assert.Equal(t, 240.0, l.FirstStage(Pretensioned))
	assert.Equal(t, 100.0, l.SecondStage(Pretensioned))
	assert.Equal(t, 150.0, l.FirstStage(PostTensioned))
	assert.Equal(t, 170.0, l.SecondStage(PostTensioned))

	small := Losses{Anchorage: 30, Relaxation: 20}
	assert.Equal(t, MinTotalLossPretensioned, small.DesignTotal(Pretensioned))
	assert.Equal(t, MinTotalLossPostTensioned, small.DesignTotal(PostTensioned))
}

func TestStateEffective(t *testing.T) {
	s := State{
		SigmaCon: 1395,
		Method:   PostTensioned,
		Losses:   Losses{Anchorage: 100, Friction: 50, Temperature: 20, Relaxation: 70, CreepShrinkage: 100},
	}
	pe, err := s.Effective()
	require.NoError(t, err)
	assert.Equal(t, 1055.0, pe)

	first, err := s.AfterFirstStage()
	require.NoError(t, err)
	assert.Equal(t, 1245.0, first)

	s.SigmaCon = 200
	_, err = s.Effective()
	assert.Error(t, err)
}

func TestStateRejectsNegativeLoss(t *testing.T) {
	s := State{
		SigmaCon: 1395,
		Method:   PostTensioned,
		Losses:   Losses{Anchorage: 100, Friction: -50, CreepShrinkage: 100},
	}
	_, err := s.Effective()
	assert.True(t, errors.Is(err, numeric.ErrDomain))
	assert.ErrorContains(t, err, "sigma_l2")

	_, err = s.AfterFirstStage()
	assert.True(t, errors.Is(err, numeric.ErrDomain))

	s.Losses.Friction = 0
	assert.NoError(t, s.Losses.Validate())
}

func TestTensioningString(t *testing.T) {
	assert.Equal(t, "pretensioned", Pretensioned.String())
	assert.Equal(t, "post-tensioned", PostTensioned.String())
	assert.Equal(t, "unknown", Tensioning(9).String())
}
