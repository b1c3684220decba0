package risk

import (
	"time"

	"github.com/sentineldata/riskintel/internal/domain/entity"
)

// recentWindowYears splits the timeline into the recent and older halves for
// the trend forecast.
const recentWindowYears = 2

// TrajectoryDetail is the predictor's output: a coarse short-term trend and
// the expected score drift.
type TrajectoryDetail struct {
	Trend            string  `json:"trend"` // "increasing", "decreasing", "stable"
	PredictedChange  float64 `json:"predicted_change"`
	RecentEvents     int     `json:"recent_events"`
	HistoricalEvents int     `json:"historical_events"`
}

// TrajectoryPredictor forecasts near-term score drift by comparing recent
// event volume against the historical baseline.  Undated events are outside
// the timeline and do not vote.
type TrajectoryPredictor struct{}

// NewTrajectoryPredictor builds the predictor.
func NewTrajectoryPredictor() *TrajectoryPredictor {
	return &TrajectoryPredictor{}
}

// Predict computes the trajectory as of now.
func (p *TrajectoryPredictor) Predict(events []entity.Event, now time.Time) TrajectoryDetail {
	detail := TrajectoryDetail{Trend: "stable"}

	cutoff := now.AddDate(-recentWindowYears, 0, 0)
	for _, e := range events {
		if e.Date == nil {
			continue
		}
		if e.Date.After(cutoff) {
			detail.RecentEvents++
		} else {
			detail.HistoricalEvents++
		}
	}

	switch {
	case detail.RecentEvents > detail.HistoricalEvents:
		detail.Trend = "increasing"
		detail.PredictedChange = 5
	case detail.RecentEvents < detail.HistoricalEvents:
		detail.Trend = "decreasing"
		detail.PredictedChange = -3
	}
	return detail
}
