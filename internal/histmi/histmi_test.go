package histmi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"infometrics/domain/core"
	"infometrics/internal/testkit"
)

func TestSelfMutualInformationReferenceRange(t *testing.T) {
	// A variable against itself with the reference configuration (256 bins,
	// sigma=1 smoothing) lands in a narrow, known band.
	x := testkit.StandardNormal(50000, 42)

	mi, err := MutualInformation2D(x, x, 1, false)
	if err != nil {
		t.Fatalf("mutual information: %v", err)
	}
	if mi <= 2.9 || mi >= 3.1 {
		t.Fatalf("self-MI outside reference range: got %v, want (2.9, 3.1)", mi)
	}
}

func TestCorrelatedExceedsIndependent(t *testing.T) {
	x := testkit.StandardNormal(20000, 1)
	noise := testkit.StandardNormal(20000, 2)
	z := testkit.StandardNormal(20000, 3)

	y := make([]float64, len(x))
	for i := range y {
		y[i] = 0.9*x[i] + 0.1*noise[i]
	}

	corr, err := MutualInformation2D(x, y, 1, false)
	require.NoError(t, err)
	indep, err := MutualInformation2D(x, z, 1, false)
	require.NoError(t, err)
	require.Greater(t, corr, indep)
}

func TestSymmetric(t *testing.T) {
	x := testkit.StandardNormal(5000, 4)
	y := testkit.StandardNormal(5000, 5)

	xy, err := MutualInformation2D(x, y, 1, false)
	require.NoError(t, err)
	yx, err := MutualInformation2D(y, x, 1, false)
	require.NoError(t, err)
	require.InDelta(t, xy, yx, 1e-9)
}

func TestNormalizedSelfMI(t *testing.T) {
	// Studholme's normalized form stays in (0, 1]; for a variable against
	// itself it sits well above the independent-variable floor.
	x := testkit.StandardNormal(50000, 42)

	nmi, err := MutualInformation2D(x, x, 1, true)
	require.NoError(t, err)
	require.Greater(t, nmi, 0.3)
	require.Less(t, nmi, 1.05)
	require.False(t, math.IsNaN(nmi))
}

func TestArgumentErrors(t *testing.T) {
	_, err := MutualInformation2D([]float64{1, 2}, []float64{1}, 1, false)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = MutualInformation2D(nil, nil, 1, false)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestUnsmoothedAlsoFinite(t *testing.T) {
	x := testkit.StandardNormal(2000, 6)
	mi, err := MutualInformation2D(x, x, 0, false)
	require.NoError(t, err)
	require.False(t, math.IsNaN(mi))
	require.False(t, math.IsInf(mi, 0))
}
