package metric

import "fmt"

// ConditionMetrics holds the per-condition scores produced when a generated
// output channel is compared against its reference stimulus. Power, center
// frequency and PAC are computed by external collaborators and attached
// here; the information metrics come from this library.
type ConditionMetrics struct {
	Condition         string    `json:"condition"`
	Entropy           float64   `json:"entropy"`
	MutualInformation float64   `json:"mutual_information"`
	DeltaMI           float64   `json:"delta_mi"`
	PeakPower         float64   `json:"peak_power,omitempty"`
	PeakFrequency     float64   `json:"peak_frequency,omitempty"`
	PAC               float64   `json:"pac,omitempty"`
	Distribution      []float64 `json:"distribution,omitempty"`
}

// ResultSet collects condition metrics keyed by condition name and computes
// mutual-information deltas against a named baseline condition.
type ResultSet struct {
	Baseline   string                      `json:"baseline"`
	Conditions map[string]ConditionMetrics `json:"conditions"`
}

// NewResultSet creates an empty result set with the given baseline condition.
func NewResultSet(baseline string) *ResultSet {
	return &ResultSet{
		Baseline:   baseline,
		Conditions: make(map[string]ConditionMetrics),
	}
}

// Add stores metrics for one condition, replacing any previous entry.
func (rs *ResultSet) Add(m ConditionMetrics) {
	rs.Conditions[m.Condition] = m
}

// ComputeDeltas fills DeltaMI on every condition as the difference between
// its mutual information and the baseline condition's. The baseline's own
// delta is zero.
func (rs *ResultSet) ComputeDeltas() error {
	base, ok := rs.Conditions[rs.Baseline]
	if !ok {
		return fmt.Errorf("result set: baseline condition %q not present", rs.Baseline)
	}
	for name, m := range rs.Conditions {
		m.DeltaMI = m.MutualInformation - base.MutualInformation
		rs.Conditions[name] = m
	}
	return nil
}
