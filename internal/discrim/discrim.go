// Package discrim scores directional agreement between two time series with
// signal-detection theory: every momentary change in the reference is a
// signal trial, every flat moment a noise trial, and the test series either
// tracks it or does not. The aggregate discriminability is d'.
package discrim

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"infometrics/domain/core"
)

// ChangeDirection returns the sign of consecutive differences of x, one of
// {-1, 0, +1} per step, with length len(x)-1.
func ChangeDirection(x []float64) ([]int, error) {
	if len(x) < 2 {
		return nil, fmt.Errorf("change direction: need at least two observations, got %d: %w", len(x), core.ErrInvalidShape)
	}
	d := make([]int, len(x)-1)
	for i := 1; i < len(x); i++ {
		diff := x[i] - x[i-1]
		switch {
		case diff > 0:
			d[i-1] = 1
		case diff < 0:
			d[i-1] = -1
		}
	}
	return d, nil
}

// Discriminations is the per-comparison classification of a test series
// against a reference. Hits and Misses are complements over the steps where
// the reference direction is nonzero; FalseAlarms and CorrectRejects are
// complements over the steps where it is zero. The two groups partition
// every step exactly once.
type Discriminations struct {
	Hits           []bool
	Misses         []bool
	FalseAlarms    []bool
	CorrectRejects []bool
}

// SignalCount is the number of nonzero-direction comparisons.
func (d Discriminations) SignalCount() int { return len(d.Hits) }

// NoiseCount is the number of zero-direction comparisons.
func (d Discriminations) NoiseCount() int { return len(d.FalseAlarms) }

// Classify compares the direction sequence of test against that of ref.
// Group membership is decided per step by a fresh ref-direction-is-zero
// test, so hit/miss and false-alarm/correct-reject trials are exact
// complements of each other.
func Classify(ref, test []float64) (Discriminations, error) {
	dRef, err := ChangeDirection(ref)
	if err != nil {
		return Discriminations{}, err
	}
	dTest, err := ChangeDirection(test)
	if err != nil {
		return Discriminations{}, err
	}
	if len(dRef) != len(dTest) {
		return Discriminations{}, fmt.Errorf("classify: series lengths %d and %d differ: %w", len(ref), len(test), core.ErrInvalidArgument)
	}

	var d Discriminations
	for i := range dRef {
		match := dRef[i] == dTest[i]
		if dRef[i] != 0 {
			d.Hits = append(d.Hits, match)
			d.Misses = append(d.Misses, !match)
		} else {
			d.FalseAlarms = append(d.FalseAlarms, match)
			d.CorrectRejects = append(d.CorrectRejects, !match)
		}
	}
	return d, nil
}

// DPrime estimates the discriminability between momentary changes in ref and
// test. Rates that saturate at exactly 0 or 1 are replaced by half a unit
// (0.5 / group count) so the inverse normal CDF stays finite. If either
// trial group is empty the rate is undefined and NaN is returned for the
// caller to check, per the degeneracy policy.
func DPrime(ref, test []float64) (float64, error) {
	d, err := Classify(ref, test)
	if err != nil {
		return 0, err
	}
	if d.SignalCount() == 0 || d.NoiseCount() == 0 {
		return math.NaN(), nil
	}

	hitRate, _ := stats.Mean(indicator(d.Hits))
	faRate, _ := stats.Mean(indicator(d.FalseAlarms))

	halfHit := 0.5 / float64(d.SignalCount())
	halfFA := 0.5 / float64(d.NoiseCount())

	if hitRate == 1 {
		hitRate = 1 - halfHit
	}
	if hitRate == 0 {
		hitRate = halfHit
	}
	if faRate == 1 {
		faRate = 1 - halfFA
	}
	if faRate == 0 {
		faRate = halfFA
	}

	return distuv.UnitNormal.Quantile(hitRate) - distuv.UnitNormal.Quantile(faRate), nil
}

func indicator(b []bool) []float64 {
	out := make([]float64, len(b))
	for i, v := range b {
		if v {
			out[i] = 1
		}
	}
	return out
}
