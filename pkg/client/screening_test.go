package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const assessmentBody = `{
	"success": true,
	"data": {
		"entity_id": "ENT-1",
		"total_score": 47.25,
		"confidence_score": 68,
		"confidence_level": "medium",
		"risk_level": "Investigative",
		"risk_color": "#fbc02d",
		"uncertainty_range": {"lower": 42.25, "upper": 52.25, "half_width": 5},
		"trajectory": {"trend": "increasing", "predicted_change": 5},
		"component_scores": {
			"event_score": 88.4,
			"pep_score": 60,
			"geographic_score": 30
		},
		"metadata": {
			"algorithm_version": "3.0.0-advanced",
			"reference_version": "2025.2"
		}
	}
}`

func newScreeningServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.RequestURI())
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/screening/history":
			_, _ = w.Write([]byte(`{"success":true,"data":[
				{"entity_id":"ENT-1","total_score":47.25,"confidence":68}
			]}`))
		default:
			_, _ = w.Write([]byte(assessmentBody))
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &paths
}

func TestAssess(t *testing.T) {
	srv, paths := newScreeningServer(t)
	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	a, err := c.Screening().Assess(context.Background(), "ENT-1")
	require.NoError(t, err)

	assert.Equal(t, "ENT-1", a.EntityID)
	assert.Equal(t, 47.25, a.TotalScore)
	assert.Equal(t, "medium", a.ConfidenceLevel)
	assert.Equal(t, "Investigative", a.RiskLevel)
	assert.Equal(t, 5.0, a.UncertaintyRange.HalfWidth)
	assert.Equal(t, "increasing", a.Trajectory.Trend)
	assert.Equal(t, 88.4, a.ComponentScores["event_score"])
	assert.Equal(t, "3.0.0-advanced", a.Metadata.AlgorithmVersion)

	require.Len(t, *paths, 1)
	assert.Equal(t, "POST /api/v1/screening/ENT-1/assess", (*paths)[0])
}

func TestReassessAddsRefreshFlag(t *testing.T) {
	srv, paths := newScreeningServer(t)
	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.Screening().Reassess(context.Background(), "ENT-1")
	require.NoError(t, err)
	assert.Equal(t, "POST /api/v1/screening/ENT-1/assess?refresh=true", (*paths)[0])
}

func TestAssessEscapesEntityID(t *testing.T) {
	srv, paths := newScreeningServer(t)
	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	_, err = c.Screening().Assess(context.Background(), "ENT/1")
	require.NoError(t, err)
	assert.Contains(t, (*paths)[0], "ENT%2F1")
}

func TestHistory(t *testing.T) {
	srv, _ := newScreeningServer(t)
	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	entries, err := c.Screening().History(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ENT-1", entries[0].EntityID)
	assert.Equal(t, 47.25, entries[0].TotalScore)
}
