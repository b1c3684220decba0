package risk

import (
	"sort"
	"time"

	"github.com/sentineldata/riskintel/internal/domain/entity"
)

// AnomalyDetail is the anomaly detector's output.
type AnomalyDetail struct {
	Score      float64  `json:"score"`
	Indicators []string `json:"indicators,omitempty"`
}

// AnomalyDetector flags statistical oddities that the per-signal extractors
// do not score directly: an outsized silence between events, and an
// improbably wide geographic footprint.
type AnomalyDetector struct{}

// NewAnomalyDetector builds the detector.
func NewAnomalyDetector() *AnomalyDetector {
	return &AnomalyDetector{}
}

// Extract inspects the record for anomalies.
func (x *AnomalyDetector) Extract(rec *entity.EntityRecord) AnomalyDetail {
	var detail AnomalyDetail

	dates := make([]time.Time, 0, len(rec.Events))
	for _, e := range rec.Events {
		if e.Date != nil {
			dates = append(dates, *e.Date)
		}
	}
	if len(dates) >= 3 {
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
		var total, largest float64
		for i := 1; i < len(dates); i++ {
			g := dates[i].Sub(dates[i-1]).Hours() / 24
			total += g
			if g > largest {
				largest = g
			}
		}
		avg := total / float64(len(dates)-1)
		if avg > 0 && largest > 3*avg {
			detail.Score += 10
			detail.Indicators = append(detail.Indicators, "temporal_clustering")
		}
	}

	if rec.DistinctAddressCountries() > 5 {
		detail.Score += 15
		detail.Indicators = append(detail.Indicators, "excessive_geographic_spread")
	}

	detail.Score = clamp100(detail.Score)
	return detail
}
