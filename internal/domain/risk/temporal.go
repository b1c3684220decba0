package risk

import (
	"sort"
	"time"

	"github.com/sentineldata/riskintel/internal/domain/entity"
)

// summaryClusterWindow is the wider burst window used for the temporal
// summary, distinct from the scoring cluster window of the event extractor.
const summaryClusterWindow = 180 * 24 * time.Hour

// TemporalPatternDetail summarises the dated-event timeline and yields the
// global temporal factor applied by the ensemble.
type TemporalPatternDetail struct {
	DecayFactor      float64    `json:"decay_factor"`
	RecencyFactor    float64    `json:"recency_factor"`
	ActivityFactor   float64    `json:"activity_factor"`
	YearsSinceRecent float64    `json:"years_since_recent"`
	SpanYears        float64    `json:"span_years"`
	ActivityRate     float64    `json:"activity_rate"`
	EventCount       int        `json:"event_count"`
	ClusterCount     int        `json:"cluster_count"`
	LargestCluster   int        `json:"largest_cluster"`
	Intensity        string     `json:"intensity"`
	MostRecent       *time.Time `json:"most_recent,omitempty"`
	Oldest           *time.Time `json:"oldest,omitempty"`
}

// TemporalPatternExtractor derives the ensemble's temporal factor: a recency
// step weight for the newest dated event times an activity-rate bump for
// sustained offending.  Records without dated events keep a neutral factor.
type TemporalPatternExtractor struct{}

// NewTemporalPatternExtractor builds the extractor.
func NewTemporalPatternExtractor() *TemporalPatternExtractor {
	return &TemporalPatternExtractor{}
}

// Extract computes the temporal detail as of now.
func (x *TemporalPatternExtractor) Extract(events []entity.Event, now time.Time) TemporalPatternDetail {
	detail := TemporalPatternDetail{
		DecayFactor:    1.0,
		RecencyFactor:  1.0,
		ActivityFactor: 1.0,
		Intensity:      "low",
	}

	dates := make([]time.Time, 0, len(events))
	for _, e := range events {
		if e.Date != nil {
			dates = append(dates, *e.Date)
		}
	}
	detail.EventCount = len(dates)
	if len(dates) == 0 {
		return detail
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	oldest, newest := dates[0], dates[len(dates)-1]
	detail.Oldest = &oldest
	detail.MostRecent = &newest
	detail.YearsSinceRecent = yearsBetween(newest, now)
	detail.SpanYears = yearsBetween(oldest, newest)

	switch {
	case detail.YearsSinceRecent <= 1:
		detail.RecencyFactor = 1.0
	case detail.YearsSinceRecent <= 2:
		detail.RecencyFactor = 0.9
	case detail.YearsSinceRecent <= 5:
		detail.RecencyFactor = 0.7
	case detail.YearsSinceRecent <= 10:
		detail.RecencyFactor = 0.5
	default:
		detail.RecencyFactor = 0.3
	}

	if detail.SpanYears > 0 {
		detail.ActivityRate = float64(len(dates)) / detail.SpanYears
	} else {
		detail.ActivityRate = float64(len(dates))
	}
	switch {
	case detail.ActivityRate > 2:
		detail.ActivityFactor = 1.2
	case detail.ActivityRate > 1:
		detail.ActivityFactor = 1.1
	}

	switch {
	case detail.ActivityRate > 1:
		detail.Intensity = "high"
	case detail.ActivityRate > 0.5:
		detail.Intensity = "moderate"
	}

	size := 1
	for i := 1; i < len(dates); i++ {
		if dates[i].Sub(dates[i-1]) <= summaryClusterWindow {
			size++
		} else {
			if size >= 2 {
				detail.ClusterCount++
				if size > detail.LargestCluster {
					detail.LargestCluster = size
				}
			}
			size = 1
		}
	}
	if size >= 2 {
		detail.ClusterCount++
		if size > detail.LargestCluster {
			detail.LargestCluster = size
		}
	}

	detail.DecayFactor = detail.RecencyFactor * detail.ActivityFactor
	return detail
}
