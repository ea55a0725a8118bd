// Package score applies the per-channel discrete scoring that the
// simulation pipeline runs on each generated output: rescale, bin, and
// measure entropy and mutual information against the reference stimulus.
package score

import (
	"infometrics/domain/metric"
	"infometrics/internal/discrete"
	"infometrics/internal/vecstats"
)

// ChannelScore is the discrete scoring of one output channel against a
// reference series.
type ChannelScore struct {
	Rescaled          []float64
	Distribution      []float64
	Entropy           float64
	MutualInformation float64
}

// Channel min-max rescales both series, then scores the test series y by
// its m-bin distribution, normalized entropy, and mutual information with
// the rescaled reference.
func Channel(ref, y []float64, m int) (ChannelScore, error) {
	refScaled := vecstats.Normalize(ref)
	yScaled := vecstats.Normalize(y)

	dist, err := discrete.Dist(yScaled, m)
	if err != nil {
		return ChannelScore{}, err
	}
	h, err := discrete.Entropy(yScaled, m, discrete.DefaultBase, true)
	if err != nil {
		return ChannelScore{}, err
	}
	mi, err := discrete.MutualInformation(refScaled, yScaled, m, discrete.DefaultBase, false)
	if err != nil {
		return ChannelScore{}, err
	}

	return ChannelScore{
		Rescaled:          yScaled,
		Distribution:      dist,
		Entropy:           h,
		MutualInformation: mi,
	}, nil
}

// Condition scores one named simulation condition and packages it as a
// result record. DeltaMI is left for metric.ResultSet.ComputeDeltas once
// the baseline condition is known.
func Condition(name string, ref, y []float64, m int) (metric.ConditionMetrics, error) {
	cs, err := Channel(ref, y, m)
	if err != nil {
		return metric.ConditionMetrics{}, err
	}
	return metric.ConditionMetrics{
		Condition:         name,
		Entropy:           cs.Entropy,
		MutualInformation: cs.MutualInformation,
		Distribution:      cs.Distribution,
	}, nil
}
