// Package vecstats provides the small vector utilities shared by every
// metric in the library: min-max normalization and a squared-error score.
package vecstats

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"infometrics/domain/core"
)

// Normalize min-max scales x to [0, 1]. The bounds are NaN-aware: NaN
// entries are ignored when locating the minimum and maximum but still map to
// NaN in the output. A zero-range input divides by zero and propagates as
// NaN/Inf rather than failing; callers that cannot rule out constant series
// must check for non-finite output.
func Normalize(x []float64) []float64 {
	finite := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}

	out := make([]float64, len(x))
	min, errMin := stats.Min(finite)
	max, errMax := stats.Max(finite)
	if errMin != nil || errMax != nil {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}

	span := max - min
	for i, v := range x {
		out[i] = (v - min) / span
	}
	return out
}

// L2Error returns the sum of squared residuals between y and the reference.
func L2Error(ref, y []float64) (float64, error) {
	if len(ref) != len(y) {
		return 0, fmt.Errorf("l2 error: series lengths %d and %d differ: %w", len(ref), len(y), core.ErrInvalidArgument)
	}
	var sum float64
	for i := range y {
		d := y[i] - ref[i]
		sum += d * d
	}
	return sum, nil
}
