package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcreteGrades(t *testing.T) {
	c, err := Concrete("c30")
	require.NoError(t, err)
	assert.Equal(t, "C30", c.Name)
	assert.Equal(t, 14.3, c.Fc)
	assert.Equal(t, 2.01, c.Ftk)

	_, err = Concrete("C99")
	assert.ErrorContains(t, err, "C20, C25")
}

func TestSteelGrades(t *testing.T) {
	s, err := Steel(" HRB500 ")
	require.NoError(t, err)
	assert.Equal(t, 435.0, s.Fy)
	assert.Equal(t, 410.0, s.FyPrime)

	_, err = Steel("A615")
	assert.Error(t, err)
}

func TestGradeApply(t *testing.T) {
	var m Material
	c, _ := Concrete("C25")
	s, _ := Steel("HRB400")
	c.Apply(&m)
	s.Apply(&m)

	assert.Equal(t, Material{Fc: 11.9, Ft: 1.27, Fy: 360, FyPrime: 360, Es: 2e5, Ec: 2.8e4}, m)
	assert.NoError(t, m.Validate())
}

func TestBalancedXi(t *testing.T) {
	tests := []struct {
		grade string
		want  float64
	}{
		{"HPB300", 0.576},
		{"HRB335", 0.550},
		{"HRB400", 0.518},
		{"HRB500", 0.482},
	}
	for _, tt := range tests {
		s, err := Steel(tt.grade)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, BalancedXi(s.Fy, s.Es), 1e-3, tt.grade)
	}
}

func TestMinRebarRatio(t *testing.T) {
	assert.Equal(t, 0.002, MinRebarRatio(1.43, 360))
	assert.InDelta(t, 0.45*1.89/270, MinRebarRatio(1.89, 270), 1e-12)
}
