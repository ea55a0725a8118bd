package knn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"infometrics/domain/core"
	"infometrics/internal/testkit"
)

func TestNearestDistancesLine(t *testing.T) {
	x := mat.NewDense(4, 1, []float64{0, 1, 3, 7})
	s := NewKDSearcher()

	r, err := s.NearestDistances(x, 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1, 2, 4}, r, 1e-12)

	r, err = s.NearestDistances(x, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 2, 3, 6}, r, 1e-12)
}

func TestNearestDistancesPlane(t *testing.T) {
	// Unit square corners: every point's nearest neighbor is at distance 1,
	// its second nearest at sqrt(2).
	x := mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	})
	s := NewKDSearcher()

	r, err := s.NearestDistances(x, 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1, 1, 1}, r, 1e-12)

	r, err = s.NearestDistances(x, 3)
	require.NoError(t, err)
	for i, v := range r {
		assert.InDelta(t, 1.4142135623730951, v, 1e-12, "point %d", i)
	}
}

func TestNearestDistancesCoincidentPoints(t *testing.T) {
	// Duplicated points: the self match is excluded, the duplicate is not,
	// so the nearest-neighbor distance is exactly zero.
	x := mat.NewDense(3, 1, []float64{0, 0, 5})
	s := NewKDSearcher()

	r, err := s.NearestDistances(x, 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 5}, r, 1e-12)
}

func TestNearestDistancesRowOrderPreserved(t *testing.T) {
	// Points at i^2 give every row a distinct nearest-neighbor distance
	// (2i-1 toward the previous point), so any reordering of results by
	// the tree's in-place partitioning would show up immediately. Large n
	// exercises the randomized pivot path as well.
	const n = 200
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = float64(i * i)
	}
	x := mat.NewDense(n, 1, vals)
	s := NewKDSearcher()

	r, err := s.NearestDistances(x, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1, r[0], 1e-12)
	for i := 1; i < n; i++ {
		assert.InDelta(t, float64(2*i-1), r[i], 1e-9, "row %d", i)
	}
}

func TestNearestDistancesArgumentErrors(t *testing.T) {
	x := mat.NewDense(3, 1, []float64{0, 1, 2})
	s := NewKDSearcher()

	_, err := s.NearestDistances(x, 0)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = s.NearestDistances(x, 3)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestNearestDistancesDeterministic(t *testing.T) {
	// The parallel fan-out writes disjoint slots and queries keep row
	// order regardless of how the tree arranges its copy of the points,
	// so repeated runs must agree bit for bit.
	x := testkit.CorrelatedGaussian(mat.NewDense(2, 2, []float64{1, 0, 0.5, 1}), 2000, 9)
	s := NewKDSearcher()

	a, err := s.NearestDistances(x, 5)
	require.NoError(t, err)
	b, err := s.NearestDistances(x, 5)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
