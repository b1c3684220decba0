package risk

import "github.com/sentineldata/riskintel/internal/domain/entity"

// ConfidenceLevel buckets the confidence score.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

const (
	requiredGroupPoints = 20.0
	optionalGroupPoints = 10.0
	completenessDivisor = 60.0
)

// CompletenessDetail reports which data groups were populated.  The quality
// label is the analyst-facing summary of the percentage.
type CompletenessDetail struct {
	Percentage    float64            `json:"percentage"`
	FieldScores   map[string]float64 `json:"field_scores,omitempty"`
	MissingFields []string           `json:"missing_fields,omitempty"`
	Quality       string             `json:"quality"` // excellent/good/fair/poor
}

// ConfidenceDetail is the estimator's output.
type ConfidenceDetail struct {
	Score              float64         `json:"score"`
	Level              ConfidenceLevel `json:"level"`
	CompletenessFactor float64         `json:"completeness_factor"`
	ExtremeScoreBoost  float64         `json:"extreme_score_boost"`
	EventCountBoost    float64         `json:"event_count_boost"`
}

// ConfidenceEstimator grades how much the assessment can be trusted: data
// completeness across the six input groups, a boost for unambiguous extreme
// scores, and a boost for event-rich records.
type ConfidenceEstimator struct{}

// NewConfidenceEstimator builds the estimator.
func NewConfidenceEstimator() *ConfidenceEstimator {
	return &ConfidenceEstimator{}
}

// Completeness scores the record's data coverage.  Required groups (events,
// attributes, addresses) earn 20 points each, optional groups 10 each; the
// percentage is earned over the required total, so a fully populated record
// reads above 100 before any consumer-side clamping.
func (e *ConfidenceEstimator) Completeness(rec *entity.EntityRecord) CompletenessDetail {
	detail := CompletenessDetail{FieldScores: make(map[string]float64)}

	groups := []struct {
		name      string
		points    float64
		populated bool
	}{
		{"events", requiredGroupPoints, len(rec.Events) > 0},
		{"attributes", requiredGroupPoints, len(rec.Attributes) > 0},
		{"addresses", requiredGroupPoints, len(rec.Addresses) > 0},
		{"relationships", optionalGroupPoints, len(rec.Relationships) > 0},
		{"aliases", optionalGroupPoints, len(rec.Aliases) > 0},
		{"identifications", optionalGroupPoints, len(rec.Identifications) > 0},
	}

	var earned float64
	for _, g := range groups {
		if g.populated {
			earned += g.points
			detail.FieldScores[g.name] = g.points
		} else {
			detail.FieldScores[g.name] = 0
			detail.MissingFields = append(detail.MissingFields, g.name)
		}
	}
	detail.Percentage = earned / completenessDivisor * 100

	switch {
	case detail.Percentage >= 90:
		detail.Quality = "excellent"
	case detail.Percentage >= 70:
		detail.Quality = "good"
	case detail.Percentage >= 40:
		detail.Quality = "fair"
	default:
		detail.Quality = "poor"
	}
	return detail
}

// Estimate computes the confidence score from completeness, the final
// ensemble score, and the raw event count.
func (e *ConfidenceEstimator) Estimate(completeness CompletenessDetail, finalScore float64, eventCount int) ConfidenceDetail {
	detail := ConfidenceDetail{CompletenessFactor: completeness.Percentage}

	if finalScore > 80 || finalScore < 20 {
		detail.ExtremeScoreBoost = 10
	}
	switch {
	case eventCount > 5:
		detail.EventCountBoost = 10
	case eventCount > 2:
		detail.EventCountBoost = 5
	}

	detail.Score = clamp100(detail.CompletenessFactor + detail.ExtremeScoreBoost + detail.EventCountBoost)
	switch {
	case detail.Score > 80:
		detail.Level = ConfidenceHigh
	case detail.Score > 60:
		detail.Level = ConfidenceMedium
	default:
		detail.Level = ConfidenceLow
	}
	return detail
}
