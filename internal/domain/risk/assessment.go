package risk

import "time"

// AlgorithmVersion identifies the scoring algorithm revision carried in
// assessment metadata.
const AlgorithmVersion = "3.0.0-advanced"

// UncertaintyRange is the confidence-derived band around the total score,
// clamped to [0,100].
type UncertaintyRange struct {
	Lower     float64 `json:"lower"`
	Upper     float64 `json:"upper"`
	HalfWidth float64 `json:"half_width"`
}

// RiskClassification is the tier assignment plus its uncertainty band.
type RiskClassification struct {
	Level       string           `json:"level"`
	Color       string           `json:"color"`
	Description string           `json:"description"`
	Uncertainty UncertaintyRange `json:"uncertainty"`
}

// AdvancedAnalytics collects every extractor's full detail object for
// analyst drill-down.
type AdvancedAnalytics struct {
	EventRisk     EventRiskDetail        `json:"event_risk"`
	PEPRisk       PEPRiskDetail          `json:"pep_risk"`
	Geographic    GeographicRiskDetail   `json:"geographic"`
	Relationships RelationshipRiskDetail `json:"relationships"`
	Temporal      TemporalPatternDetail  `json:"temporal"`
	Behavior      BehaviorDetail         `json:"behavior"`
	Network       NetworkDetail          `json:"network"`
	Anomalies     AnomalyDetail          `json:"anomalies"`
	Correlation   CorrelationDetail      `json:"correlation"`
	Confidence    ConfidenceDetail       `json:"confidence"`
	Calculation   CalculationSteps       `json:"calculation"`
}

// AssessmentMetadata carries provenance alongside the scores.
type AssessmentMetadata struct {
	AlgorithmVersion  string             `json:"algorithm_version"`
	ReferenceVersion  string             `json:"reference_version"`
	Timestamp         time.Time          `json:"timestamp"`
	DataCompleteness  CompletenessDetail `json:"data_completeness"`
	FeatureImportance EnsembleWeights    `json:"feature_importance"`
}

// RiskAssessment is the engine's immutable output value.  A fresh value is
// produced on every call; nothing in it aliases engine state.
type RiskAssessment struct {
	EntityID         string             `json:"entity_id"`
	TotalScore       float64            `json:"total_score"`
	ConfidenceScore  float64            `json:"confidence_score"`
	ConfidenceLevel  ConfidenceLevel    `json:"confidence_level"`
	RiskLevel        string             `json:"risk_level"`
	RiskColor        string             `json:"risk_color"`
	RiskDescription  string             `json:"risk_description"`
	UncertaintyRange UncertaintyRange   `json:"uncertainty_range"`
	Trajectory       TrajectoryDetail   `json:"trajectory"`
	ComponentScores  ComponentScores    `json:"component_scores"`
	Analytics        AdvancedAnalytics  `json:"advanced_analytics"`
	Metadata         AssessmentMetadata `json:"metadata"`
}

// uncertaintyHalfWidth maps the confidence level to the band half-width.
func uncertaintyHalfWidth(level ConfidenceLevel) float64 {
	switch level {
	case ConfidenceHigh:
		return 2
	case ConfidenceMedium:
		return 5
	default:
		return 8
	}
}

// Classify maps a final score and confidence level onto a tier with its
// uncertainty band.
func Classify(ref *Reference, score float64, level ConfidenceLevel) RiskClassification {
	tier := ref.TierFor(score)
	half := uncertaintyHalfWidth(level)
	return RiskClassification{
		Level:       tier.Label,
		Color:       tier.Color,
		Description: tier.Description,
		Uncertainty: UncertaintyRange{
			Lower:     clamp100(score - half),
			Upper:     clamp100(score + half),
			HalfWidth: half,
		},
	}
}
