package risk

import (
	"math"
	"sort"
	"time"

	"github.com/sentineldata/riskintel/internal/domain/entity"
)

// clusterWindow is the maximum gap between consecutive dated events for them
// to belong to the same burst.
const clusterWindow = 90 * 24 * time.Hour

const (
	clusterScorePerMember = 5.0
	clusterScoreCap       = 50.0
	escalationThreshold   = 0.6
	escalationBonusScale  = 10.0
	clusterBonusWeight    = 0.2
	varianceCap           = 10.0
)

// ClusteringDetail summarises temporal bursts of dated events.
type ClusteringDetail struct {
	Clusters int     `json:"clusters"`
	Score    float64 `json:"score"`
	Pattern  string  `json:"pattern"` // "clustered" or "distributed"
}

// EscalationDetail summarises the direction of per-event score deltas over
// the dated timeline.
type EscalationDetail struct {
	Pattern  string  `json:"pattern"` // "escalating", "de-escalating", "stable"
	Strength float64 `json:"strength"`
}

// EventRiskDetail is the event extractor's full output.
type EventRiskDetail struct {
	Score                float64          `json:"score"`
	EventCount           int              `json:"event_count"`
	MaxScore             float64          `json:"max_score"`
	MeanScore            float64          `json:"mean_score"`
	Variance             float64          `json:"variance"`
	SeverityDistribution map[Severity]int `json:"severity_distribution"`
	CategoryPatterns     map[string]int   `json:"category_patterns"`
	DiversityFactor      float64          `json:"diversity_factor"`
	Clustering           ClusteringDetail `json:"clustering"`
	Escalation           EscalationDetail `json:"escalation"`
}

// eventPoint is one dated event's decayed score, used by the clustering and
// escalation passes.
type eventPoint struct {
	date  time.Time
	score float64
}

// EventRiskExtractor scores the entity's adverse-event history.  Each event
// contributes its category base score, scaled by the sub-category multiplier,
// any category/sub-category synergy, and a per-category temporal decay; the
// per-event scores are then blended (max-dominant) and adjusted for category
// diversity, escalation, and burst clustering.
type EventRiskExtractor struct {
	ref *Reference
}

// NewEventRiskExtractor builds the extractor over a reference snapshot.
func NewEventRiskExtractor(ref *Reference) *EventRiskExtractor {
	return &EventRiskExtractor{ref: ref}
}

// Extract computes the event risk detail for a set of events as of now.
// No events yields a zero score with neutral factors.
func (x *EventRiskExtractor) Extract(events []entity.Event, now time.Time) EventRiskDetail {
	detail := EventRiskDetail{
		EventCount:           len(events),
		SeverityDistribution: make(map[Severity]int),
		CategoryPatterns:     make(map[string]int),
		DiversityFactor:      1.0,
		Escalation:           EscalationDetail{Pattern: "stable", Strength: 0.5},
		Clustering:           ClusteringDetail{Pattern: "distributed"},
	}
	if len(events) == 0 {
		return detail
	}

	scores := make([]float64, 0, len(events))
	timeline := make([]eventPoint, 0, len(events))
	for _, e := range events {
		cat := x.ref.Category(e.CategoryCode)
		detail.SeverityDistribution[cat.Severity]++
		detail.CategoryPatterns[e.CategoryCode]++

		s := cat.RiskScore
		if e.SubCategoryCode != "" {
			s *= x.ref.SubCategoryMultiplier(e.SubCategoryCode)
			s *= x.ref.SynergyBoost(e.CategoryCode, e.SubCategoryCode)
		}
		// Undated events keep full temporal weight and stay out of the
		// timeline passes.
		if e.Date != nil {
			rate, floor := x.ref.DecayParams(e.CategoryCode)
			weight := 1 - yearsBetween(*e.Date, now)*rate
			if weight < floor {
				weight = floor
			}
			s *= weight
			timeline = append(timeline, eventPoint{date: *e.Date, score: s})
		}
		scores = append(scores, s)
	}

	detail.MaxScore = maxFloat(scores)
	detail.MeanScore = mean(scores)
	detail.Variance = sampleVariance(scores)
	detail.DiversityFactor = diversityFactor(len(detail.CategoryPatterns))

	sort.Slice(timeline, func(i, j int) bool { return timeline[i].date.Before(timeline[j].date) })
	detail.Clustering = clusterTimeline(timeline)
	detail.Escalation = escalationPattern(timeline)

	score := (0.7*detail.MaxScore + 0.2*detail.MeanScore +
		0.1*math.Min(math.Sqrt(detail.Variance), varianceCap)) * detail.DiversityFactor
	if detail.Escalation.Pattern == "escalating" {
		score += escalationBonusScale * detail.Escalation.Strength
	}
	score += clusterBonusWeight * detail.Clustering.Score
	detail.Score = clamp100(score)
	return detail
}

// diversityFactor rewards breadth of wrongdoing but also gives a small bump
// to repeated single-category offending.
func diversityFactor(categories int) float64 {
	switch {
	case categories == 1:
		return 1.1
	case categories > 5:
		return 1.2
	default:
		return 1.0
	}
}

// clusterTimeline groups sorted dated events into bursts no more than the
// cluster window apart and scores bursts of two or more members.
func clusterTimeline(timeline []eventPoint) ClusteringDetail {
	detail := ClusteringDetail{Pattern: "distributed"}
	if len(timeline) < 2 {
		return detail
	}

	size := 1
	flush := func() {
		if size >= 2 {
			detail.Clusters++
			detail.Score += float64(size) * clusterScorePerMember
		}
		size = 1
	}
	for i := 1; i < len(timeline); i++ {
		if timeline[i].date.Sub(timeline[i-1].date) <= clusterWindow {
			size++
		} else {
			flush()
		}
	}
	flush()

	if detail.Score > clusterScoreCap {
		detail.Score = clusterScoreCap
	}
	if detail.Clusters > 0 {
		detail.Pattern = "clustered"
	}
	return detail
}

// escalationPattern classifies the sign trend of consecutive score deltas
// over the sorted timeline.
func escalationPattern(timeline []eventPoint) EscalationDetail {
	detail := EscalationDetail{Pattern: "stable", Strength: 0.5}
	if len(timeline) < 2 {
		return detail
	}

	var inc, dec int
	for i := 1; i < len(timeline); i++ {
		switch {
		case timeline[i].score > timeline[i-1].score:
			inc++
		case timeline[i].score < timeline[i-1].score:
			dec++
		}
	}
	n := float64(len(timeline) - 1)
	switch {
	case inc > dec && float64(inc) > escalationThreshold*n:
		detail.Pattern = "escalating"
		detail.Strength = float64(inc) / n
	case dec > inc && float64(dec) > escalationThreshold*n:
		detail.Pattern = "de-escalating"
		detail.Strength = float64(dec) / n
	}
	return detail
}
