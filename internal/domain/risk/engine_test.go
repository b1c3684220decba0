package risk

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentineldata/riskintel/internal/domain/entity"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(DefaultReference(), WithClock(func() time.Time { return scoringNow }))
}

func TestScoreEmptyRecord(t *testing.T) {
	e := newTestEngine(t)
	a := e.Score(&entity.EntityRecord{ID: "ent-1"})

	assert.Zero(t, a.TotalScore)
	assert.False(t, a.Analytics.PEPRisk.IsPEP)
	assert.Zero(t, a.Metadata.DataCompleteness.Percentage)
	assert.Equal(t, "Probative", a.RiskLevel)
	assert.Equal(t, AlgorithmVersion, a.Metadata.AlgorithmVersion)
	assert.Equal(t, scoringNow, a.Metadata.Timestamp)
}

func TestScoreBounds(t *testing.T) {
	e := newTestEngine(t)

	records := []*entity.EntityRecord{
		{},
		{Events: []entity.Event{{CategoryCode: "TER", SubCategoryCode: "CVT", Date: datePtr(2025, 5, 1)}}},
		{
			Events: []entity.Event{
				{CategoryCode: "TER", SubCategoryCode: "CVT", Date: datePtr(2025, 5, 1)},
				{CategoryCode: "MLA", SubCategoryCode: "SAN", Date: datePtr(2025, 4, 1)},
				{CategoryCode: "DTF", SubCategoryCode: "IND", Date: datePtr(2025, 3, 1)},
				{CategoryCode: "ORG", SubCategoryCode: "ART", Date: datePtr(2025, 2, 1)},
			},
			Attributes:    []entity.AttributeTag{{CodeType: RoleTagType, RawValue: "HOS:L6"}},
			Addresses:     []entity.Address{{Country: "IR"}, {Country: "SY"}, {Country: "AF"}, {Country: "KP"}},
			Relationships: []entity.Relationship{{Type: "BENEFICIAL_OWNER", CounterpartName: "A"}, {Type: "ASSOCIATE", CounterpartName: "B"}},
			Aliases:       []string{"a", "b", "c", "d", "e"},
		},
	}
	for i, rec := range records {
		a := e.Score(rec)
		assert.GreaterOrEqual(t, a.TotalScore, 0.0, "record %d", i)
		assert.LessOrEqual(t, a.TotalScore, 100.0, "record %d", i)
		assert.GreaterOrEqual(t, a.ConfidenceScore, 0.0, "record %d", i)
		assert.LessOrEqual(t, a.ConfidenceScore, 100.0, "record %d", i)
		assert.GreaterOrEqual(t, a.UncertaintyRange.Lower, 0.0, "record %d", i)
		assert.LessOrEqual(t, a.UncertaintyRange.Upper, 100.0, "record %d", i)
	}
}

func TestScoreIdempotent(t *testing.T) {
	e := newTestEngine(t)
	rec := &entity.EntityRecord{
		ID: "ent-2",
		Events: []entity.Event{
			{CategoryCode: "MLA", SubCategoryCode: "SAN", Date: datePtr(2024, 3, 1)},
			{CategoryCode: "FRD", Date: datePtr(2023, 7, 15)},
		},
		Attributes: []entity.AttributeTag{{CodeType: RoleTagType, RawValue: "CAB:L5"}},
		Addresses:  []entity.Address{{Country: "RU"}},
	}

	first := e.ScoreAt(rec, scoringNow)
	second := e.ScoreAt(rec, scoringNow)
	assert.Equal(t, first, second)
}

// A lone same-day terrorism conviction maxes out the event component, but the
// 0.45 feature weight keeps the ensemble total mid-scale: events dominate the
// mix without one signal owning the verdict.
func TestScoreSingleCriticalEvent(t *testing.T) {
	e := newTestEngine(t)
	a := e.Score(&entity.EntityRecord{
		ID:     "ent-3",
		Events: []entity.Event{{CategoryCode: "TER", Date: datePtr(2025, 6, 1)}},
	})

	assert.Greater(t, a.ComponentScores.EventScore, 95.0)
	assert.InDelta(t, 0.45*a.ComponentScores.EventScore, a.TotalScore, 0.01)
	assert.Equal(t, "Investigative", a.RiskLevel)

	// Only one of three required data groups present.
	assert.InDelta(t, 33.33, a.Metadata.DataCompleteness.Percentage, 0.01)
	assert.Equal(t, ConfidenceLow, a.ConfidenceLevel)
}

// The strongest possible political exposure without events lands low in the
// ensemble: the PEP weight is 0.20 against 0.45 for events.
func TestScorePEPOnlyStaysLow(t *testing.T) {
	e := newTestEngine(t)
	a := e.Score(&entity.EntityRecord{
		ID:         "ent-4",
		Attributes: []entity.AttributeTag{{CodeType: RoleTagType, RawValue: "HOS:L6"}},
	})

	assert.Equal(t, 100.0, a.ComponentScores.PEPScore)
	assert.InDelta(t, 20.0, a.TotalScore, 0.01)
	assert.Equal(t, "Probative", a.RiskLevel)
}

// Ten identical-severity events in a tight cadence must outscore the single
// event through clustering and escalation, not through severity.
func TestScoreClusteredSeriesOutscoresSingle(t *testing.T) {
	e := newTestEngine(t)

	series := make([]entity.Event, 0, 10)
	for i := 0; i < 10; i++ {
		d := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 30*i)
		series = append(series, entity.Event{CategoryCode: "FRD", Date: &d})
	}
	clustered := e.Score(&entity.EntityRecord{ID: "ent-5", Events: series})
	single := e.Score(&entity.EntityRecord{ID: "ent-6", Events: series[:1]})

	assert.Greater(t, clustered.ComponentScores.EventScore, single.ComponentScores.EventScore)
	assert.Equal(t, "clustered", clustered.Analytics.EventRisk.Clustering.Pattern)
}

// Same profile, dates shifted ten years back: decay and recency push both the
// event component and the total down.
func TestScoreOldProfileDecays(t *testing.T) {
	e := newTestEngine(t)

	mk := func(year int) *entity.EntityRecord {
		return &entity.EntityRecord{
			ID: fmt.Sprintf("ent-%d", year),
			Events: []entity.Event{
				{CategoryCode: "MLA", Date: datePtr(year, 3, 1)},
				{CategoryCode: "FRD", Date: datePtr(year, 9, 1)},
			},
			Addresses: []entity.Address{{Country: "RU"}},
		}
	}
	fresh := e.Score(mk(2024))
	stale := e.Score(mk(2012))

	assert.Greater(t, fresh.TotalScore, stale.TotalScore)
	assert.Less(t, stale.Analytics.Temporal.RecencyFactor, fresh.Analytics.Temporal.RecencyFactor)
}

func TestScoreBoundaryExactness(t *testing.T) {
	ref := DefaultReference()
	assert.Equal(t, "Critical", Classify(ref, 80, ConfidenceHigh).Level)
	assert.Equal(t, "Valuable", Classify(ref, 79.999, ConfidenceHigh).Level)
	assert.Equal(t, "Valuable", Classify(ref, 60, ConfidenceHigh).Level)
	assert.Equal(t, "Investigative", Classify(ref, 59.999, ConfidenceHigh).Level)
}

func TestUncertaintyBandWidths(t *testing.T) {
	ref := DefaultReference()

	high := Classify(ref, 50, ConfidenceHigh)
	assert.Equal(t, UncertaintyRange{Lower: 48, Upper: 52, HalfWidth: 2}, high.Uncertainty)

	low := Classify(ref, 97, ConfidenceLow)
	assert.Equal(t, 89.0, low.Uncertainty.Lower)
	assert.Equal(t, 100.0, low.Uncertainty.Upper) // clamped
}

func TestScoreRecordsHistory(t *testing.T) {
	e := newTestEngine(t)
	e.Score(&entity.EntityRecord{ID: "ent-7"})
	e.Score(&entity.EntityRecord{ID: "ent-8"})

	h := e.History()
	require.Len(t, h, 2)
	assert.Equal(t, "ent-7", h[0].EntityID)
	assert.Equal(t, "ent-8", h[1].EntityID)
	assert.Equal(t, scoringNow, h[0].Timestamp)
}

func TestSetReferenceSwapsAtomically(t *testing.T) {
	e := newTestEngine(t)

	next := DefaultReference()
	next.Version = "2025.3"
	e.SetReference(next)

	a := e.Score(&entity.EntityRecord{ID: "ent-9"})
	assert.Equal(t, "2025.3", a.Metadata.ReferenceVersion)

	e.SetReference(nil) // ignored
	assert.Equal(t, "2025.3", e.Reference().Version)
}

func TestScoreConcurrent(t *testing.T) {
	e := newTestEngine(t)
	rec := &entity.EntityRecord{
		ID:         "ent-10",
		Events:     []entity.Event{{CategoryCode: "BRB", Date: datePtr(2024, 11, 2)}},
		Attributes: []entity.AttributeTag{{CodeType: RoleTagType, RawValue: "REG:L3"}},
	}
	want := e.ScoreAt(rec, scoringNow).TotalScore

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				a := e.ScoreAt(rec, scoringNow)
				assert.Equal(t, want, a.TotalScore)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 16*50+1, len(e.History()))
}

func TestHistoryEviction(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Append(HistoryEntry{EntityID: fmt.Sprintf("e%d", i)})
	}
	snap := h.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "e2", snap[0].EntityID)
	assert.Equal(t, "e4", snap[2].EntityID)
	assert.Equal(t, 3, h.Len())
}
