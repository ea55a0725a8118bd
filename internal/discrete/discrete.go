// Package discrete computes Shannon entropy and mutual information over a
// fixed-width binning of continuous samples.
package discrete

import (
	"fmt"
	"math"

	"infometrics/domain/core"
)

// DefaultBase is the historical log base for entropy in this pipeline.
// Base 2 yields bits, e yields nats.
const DefaultBase = 10

// Dist drops non-finite entries from x and partitions the remaining values
// into m equal-width bins spanning their observed range, returning the
// normalized counts. The right edge of the range closes the last bin. A
// zero-range input puts all mass in the first bin; an input with no finite
// samples yields NaN probabilities, which downstream entropy propagates.
func Dist(x []float64, m int) ([]float64, error) {
	if m < 1 {
		return nil, fmt.Errorf("discrete dist: bin count must be positive, got %d: %w", m, core.ErrInvalidArgument)
	}

	finite := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}

	dist := make([]float64, m)
	if len(finite) == 0 {
		for i := range dist {
			dist[i] = math.NaN()
		}
		return dist, nil
	}

	min, max := finite[0], finite[0]
	for _, v := range finite {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	width := (max - min) / float64(m)
	for _, v := range finite {
		bin := 0
		if width > 0 {
			bin = int((v - min) / width)
			if bin >= m {
				bin = m - 1
			}
		}
		dist[bin]++
	}

	total := float64(len(finite))
	for i := range dist {
		dist[i] /= total
	}
	return dist, nil
}

// Entropy returns -sum(p * log_base(p)) over the nonzero-probability bins of
// Dist(x, m), defining 0*log(0) as 0. When normalize is set the result is
// divided by log_base(m), bounding it to [0, 1].
func Entropy(x []float64, m int, base float64, normalize bool) (float64, error) {
	dist, err := Dist(x, m)
	if err != nil {
		return 0, err
	}

	logBase := math.Log(base)
	var h float64
	for _, p := range dist {
		if math.IsNaN(p) {
			return math.NaN(), nil
		}
		if p > 0 {
			h -= p * math.Log(p) / logBase
		}
	}

	if normalize {
		h /= math.Log(float64(m)) / logBase
	}
	return h, nil
}

// MutualInformation returns H(x) + H(y) - H(xy) over the m-bin
// discretization, where the joint term is the entropy of the pooled values
// of x and y. Pooling approximates the true joint entropy without a 2D
// histogram; it is a deliberate simplification inherited by every consumer
// of this score. The entropy terms are the normalized form, so the result
// is on the [0, 1] entropy scale. When normalize is set the result is
// divided by sqrt(H(x) * H(y)). Symmetric in x and y.
func MutualInformation(x, y []float64, m int, base float64, normalize bool) (float64, error) {
	hx, err := Entropy(x, m, base, true)
	if err != nil {
		return 0, err
	}
	hy, err := Entropy(y, m, base, true)
	if err != nil {
		return 0, err
	}

	pooled := make([]float64, 0, len(x)+len(y))
	pooled = append(pooled, x...)
	pooled = append(pooled, y...)
	hxy, err := Entropy(pooled, m, base, true)
	if err != nil {
		return 0, err
	}

	mi := hx + hy - hxy
	if normalize {
		return mi / math.Sqrt(hx*hy), nil
	}
	return mi, nil
}
