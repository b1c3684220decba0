package risk

// ComponentScores are the six weighted sub-scores plus the multiplicative
// and additive adjustments that produced the total.
type ComponentScores struct {
	EventScore           float64 `json:"event_score"`
	PEPScore             float64 `json:"pep_score"`
	GeographicScore      float64 `json:"geographic_score"`
	RelationshipScore    float64 `json:"relationship_score"`
	BehaviorScore        float64 `json:"behavior_score"`
	AnomalyScore         float64 `json:"anomaly_score"`
	TemporalFactor       float64 `json:"temporal_factor"`
	NetworkAmplification float64 `json:"network_amplification"`
	CorrelationBonus     float64 `json:"correlation_bonus"`
}

// CalculationSteps records the intermediate ensemble values for analyst
// explainability.
type CalculationSteps struct {
	BaseWeightedScore float64 `json:"base_weighted_score"`
	TemporalAdjusted  float64 `json:"temporal_adjusted"`
	NetworkAdjusted   float64 `json:"network_adjusted"`
	Final             float64 `json:"final"`
}

// EnsembleDetail is the scorer's output.
type EnsembleDetail struct {
	TotalScore float64          `json:"total_score"`
	Steps      CalculationSteps `json:"steps"`
}

// EnsembleScorer combines the component scores under the configured feature
// weights, applies the temporal and network factors multiplicatively, adds
// the correlation bonus, and clamps to the canonical scale.
type EnsembleScorer struct {
	ref *Reference
}

// NewEnsembleScorer builds the scorer over a reference snapshot.
func NewEnsembleScorer(ref *Reference) *EnsembleScorer {
	return &EnsembleScorer{ref: ref}
}

// Combine produces the final score from the assembled components.
func (s *EnsembleScorer) Combine(c ComponentScores) EnsembleDetail {
	w := s.ref.Weights
	var d EnsembleDetail
	d.Steps.BaseWeightedScore = w.Events*c.EventScore +
		w.PEP*c.PEPScore +
		w.Geographic*c.GeographicScore +
		w.Relationships*c.RelationshipScore +
		w.Behavior*c.BehaviorScore +
		w.Anomalies*c.AnomalyScore
	d.Steps.TemporalAdjusted = d.Steps.BaseWeightedScore * c.TemporalFactor
	d.Steps.NetworkAdjusted = d.Steps.TemporalAdjusted * c.NetworkAmplification
	d.Steps.Final = clamp100(d.Steps.NetworkAdjusted + c.CorrelationBonus)
	d.TotalScore = d.Steps.Final
	return d
}
