package numeric

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproxEqual(t *testing.T) {
	tests := []struct {
		a, b, tol float64
		want      bool
	}{
		{1.0, 1.0, 0, true},
		{1.0, 1.05, 0.1, true},
		{1.0, 1.1, 0.1, true},
		{1.0, 1.2, 0.1, false},
		{-5, 5, 9.99, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ApproxEqual(tt.a, tt.b, tt.tol), "ApproxEqual(%g, %g, %g)", tt.a, tt.b, tt.tol)
	}
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(10, 10, 50))
	assert.True(t, InRange(50, 10, 50))
	assert.True(t, InRange(30, 10, 50))
	assert.False(t, InRange(9.99, 10, 50))
	assert.False(t, InRange(50.01, 10, 50))
}

func TestCheckRange(t *testing.T) {
	r := Range{Min: 10, Max: 50}

	_, out := CheckRange("fc", 30, r)
	assert.False(t, out)

	w, out := CheckRange("fc", 60, r)
	require.True(t, out)
	assert.Equal(t, "fc", w.Param)
	assert.Equal(t, 60.0, w.Value)
	assert.Contains(t, w.String(), "outside 10-50")
}

func TestDomainError(t *testing.T) {
	err := Domain("EffectiveHeight", "as", 600, "cover must be less than h")
	assert.True(t, errors.Is(err, ErrDomain))

	wrapped := fmt.Errorf("beam B1: %w", err)
	assert.True(t, errors.Is(wrapped, ErrDomain))

	var de *DomainError
	require.True(t, errors.As(wrapped, &de))
	assert.Equal(t, "as", de.Param)
	assert.Equal(t, "EffectiveHeight: invalid as=600: cover must be less than h", de.Error())

	assert.False(t, errors.Is(errors.New("other"), ErrDomain))
}
