package vecstats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infometrics/domain/core"
)

func TestNormalizeEndpoints(t *testing.T) {
	x := []float64{3, 7, 5, 11, 4}
	out := Normalize(x)

	assert.InDelta(t, 0, out[0], 1e-12)
	assert.InDelta(t, 1, out[3], 1e-12)
	for _, v := range out {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestNormalizeNaNAware(t *testing.T) {
	x := []float64{2, math.NaN(), 6, 4}
	out := Normalize(x)

	assert.InDelta(t, 0, out[0], 1e-12)
	assert.True(t, math.IsNaN(out[1]))
	assert.InDelta(t, 1, out[2], 1e-12)
	assert.InDelta(t, 0.5, out[3], 1e-12)
}

func TestNormalizeZeroRangePropagatesNaN(t *testing.T) {
	out := Normalize([]float64{5, 5, 5})
	for _, v := range out {
		assert.True(t, math.IsNaN(v), "constant series must propagate NaN, got %v", v)
	}
}

func TestNormalizeAllNaN(t *testing.T) {
	out := Normalize([]float64{math.NaN(), math.NaN()})
	for _, v := range out {
		assert.True(t, math.IsNaN(v))
	}
}

func TestL2Error(t *testing.T) {
	got, err := L2Error([]float64{1, 2, 3}, []float64{2, 2, 5})
	require.NoError(t, err)
	assert.InDelta(t, 5, got, 1e-12)
}

func TestL2ErrorLengthMismatch(t *testing.T) {
	_, err := L2Error([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}
