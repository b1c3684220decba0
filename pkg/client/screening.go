package client

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// ScreeningClient exposes the screening endpoints.
type ScreeningClient struct {
	c *Client
}

// Assessment is the SDK view of a risk assessment: the headline numbers plus
// the raw component breakdown.
type Assessment struct {
	EntityID        string  `json:"entity_id"`
	TotalScore      float64 `json:"total_score"`
	ConfidenceScore float64 `json:"confidence_score"`
	ConfidenceLevel string  `json:"confidence_level"`
	RiskLevel       string  `json:"risk_level"`
	RiskColor       string  `json:"risk_color"`
	RiskDescription string  `json:"risk_description"`

	UncertaintyRange struct {
		Lower     float64 `json:"lower"`
		Upper     float64 `json:"upper"`
		HalfWidth float64 `json:"half_width"`
	} `json:"uncertainty_range"`

	Trajectory struct {
		Trend           string  `json:"trend"`
		PredictedChange float64 `json:"predicted_change"`
	} `json:"trajectory"`

	ComponentScores map[string]float64 `json:"component_scores"`

	Metadata struct {
		AlgorithmVersion string    `json:"algorithm_version"`
		ReferenceVersion string    `json:"reference_version"`
		Timestamp        time.Time `json:"timestamp"`
	} `json:"metadata"`
}

// HistoryEntry is one retained assessment summary.
type HistoryEntry struct {
	EntityID     string    `json:"entity_id"`
	TotalScore   float64   `json:"total_score"`
	Confidence   float64   `json:"confidence"`
	Completeness float64   `json:"completeness"`
	Timestamp    time.Time `json:"timestamp"`
}

// Assess requests an assessment for the entity, served from the server's
// cache when fresh.
func (s *ScreeningClient) Assess(ctx context.Context, entityID string) (*Assessment, error) {
	return s.assess(ctx, entityID, false)
}

// Reassess forces a fresh scoring pass for the entity.
func (s *ScreeningClient) Reassess(ctx context.Context, entityID string) (*Assessment, error) {
	return s.assess(ctx, entityID, true)
}

func (s *ScreeningClient) assess(ctx context.Context, entityID string, refresh bool) (*Assessment, error) {
	path := "/api/v1/screening/" + url.PathEscape(entityID) + "/assess"
	if refresh {
		path += "?refresh=true"
	}
	var a Assessment
	if err := s.c.do(ctx, http.MethodPost, path, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// History returns the server's retained assessment summaries.
func (s *ScreeningClient) History(ctx context.Context) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	if err := s.c.do(ctx, http.MethodGet, "/api/v1/screening/history", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
