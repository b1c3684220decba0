package screening

import (
	"context"
	"sync"
	"testing"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentineldata/riskintel/internal/domain/entity"
	"github.com/sentineldata/riskintel/internal/domain/risk"
	"github.com/sentineldata/riskintel/internal/infrastructure/monitoring/logging"
	"github.com/sentineldata/riskintel/internal/infrastructure/monitoring/prometheus"
	"github.com/sentineldata/riskintel/pkg/errors"
)

type fakeRepo struct {
	records map[string]*entity.EntityRecord
	err     error
	calls   int
}

func (r *fakeRepo) GetByID(_ context.Context, entityID string) (*entity.EntityRecord, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	rec, ok := r.records[entityID]
	if !ok {
		return nil, errors.New(errors.ErrCodeEntityNotFound, "entity not found")
	}
	return rec, nil
}

type fakeCache struct {
	mu    sync.Mutex
	items map[string]risk.RiskAssessment
	sets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: map[string]risk.RiskAssessment{}}
}

func (c *fakeCache) Get(_ context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.items[key]
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "cache miss")
	}
	*dest.(*risk.RiskAssessment) = a
	return nil
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = *value.(*risk.RiskAssessment)
	c.sets++
	return nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.items, k)
	}
	return nil
}

type fakePublisher struct {
	published chan *risk.RiskAssessment
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{published: make(chan *risk.RiskAssessment, 8)}
}

func (p *fakePublisher) PublishAssessment(_ context.Context, a *risk.RiskAssessment) error {
	p.published <- a
	return nil
}

func testRecord(id string) *entity.EntityRecord {
	return &entity.EntityRecord{
		ID: id,
		Events: []entity.Event{
			{CategoryCode: "MLA", SubCategoryCode: "CVT"},
		},
		Attributes: []entity.AttributeTag{{CodeType: "PTY", RawValue: "HOS:L4"}},
		Addresses:  []entity.Address{{Country: "IR"}},
	}
}

type fixture struct {
	svc   Service
	repo  *fakeRepo
	cache *fakeCache
	pub   *fakePublisher
}

func newFixture(t *testing.T, records ...*entity.EntityRecord) *fixture {
	t.Helper()
	repo := &fakeRepo{records: map[string]*entity.EntityRecord{}}
	for _, r := range records {
		repo.records[r.ID] = r
	}
	cache := newFakeCache()
	pub := newFakePublisher()
	metrics := prometheus.New(promclient.NewRegistry())
	engine := risk.NewEngine(nil)
	svc := NewService(repo, engine, cache, pub, metrics, logging.NewNopLogger(), time.Minute)
	return &fixture{svc: svc, repo: repo, cache: cache, pub: pub}
}

func TestAssessEntityInvalidID(t *testing.T) {
	f := newFixture(t)
	for _, id := range []string{"", "has space", " lead"} {
		_, err := f.svc.AssessEntity(context.Background(), id)
		assert.True(t, errors.IsCode(err, errors.ErrCodeEntityIDInvalid), "id %q", id)
	}
	assert.Zero(t, f.repo.calls)
}

func TestAssessEntityNotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.AssessEntity(context.Background(), "ENT-404")
	assert.True(t, errors.IsCode(err, errors.ErrCodeEntityNotFound))
}

func TestAssessEntityRepoFailure(t *testing.T) {
	f := newFixture(t)
	f.repo.err = errors.New(errors.ErrCodeDatabaseError, "connection reset")

	_, err := f.svc.AssessEntity(context.Background(), "ENT-1")
	assert.True(t, errors.IsCode(err, errors.ErrCodeProfileFetchFailed))
}

func TestAssessEntityScoresAndCaches(t *testing.T) {
	f := newFixture(t, testRecord("ENT-1"))

	a, err := f.svc.AssessEntity(context.Background(), "ENT-1")
	require.NoError(t, err)
	assert.Equal(t, "ENT-1", a.EntityID)
	assert.Greater(t, a.TotalScore, 0.0)
	assert.NotEmpty(t, a.RiskLevel)
	assert.Equal(t, 1, f.cache.sets)

	select {
	case published := <-f.pub.published:
		assert.Equal(t, "ENT-1", published.EntityID)
	case <-time.After(time.Second):
		t.Fatal("assessment was not published")
	}
}

func TestAssessEntityCacheHit(t *testing.T) {
	f := newFixture(t, testRecord("ENT-1"))

	first, err := f.svc.AssessEntity(context.Background(), "ENT-1")
	require.NoError(t, err)
	require.Equal(t, 1, f.repo.calls)

	second, err := f.svc.AssessEntity(context.Background(), "ENT-1")
	require.NoError(t, err)
	// Served from cache: no second repository round trip.
	assert.Equal(t, 1, f.repo.calls)
	assert.Equal(t, first.TotalScore, second.TotalScore)
	assert.Equal(t, first.RiskLevel, second.RiskLevel)
}

func TestReassessEntityBypassesCache(t *testing.T) {
	f := newFixture(t, testRecord("ENT-1"))

	_, err := f.svc.AssessEntity(context.Background(), "ENT-1")
	require.NoError(t, err)
	require.Equal(t, 1, f.repo.calls)

	_, err = f.svc.ReassessEntity(context.Background(), "ENT-1")
	require.NoError(t, err)
	assert.Equal(t, 2, f.repo.calls)
	assert.Equal(t, 2, f.cache.sets)
}

func TestHistoryGrowsWithAssessments(t *testing.T) {
	f := newFixture(t, testRecord("ENT-1"), testRecord("ENT-2"))

	_, err := f.svc.AssessEntity(context.Background(), "ENT-1")
	require.NoError(t, err)
	_, err = f.svc.AssessEntity(context.Background(), "ENT-2")
	require.NoError(t, err)

	entries := f.svc.History(context.Background())
	require.Len(t, entries, 2)
	assert.Equal(t, "ENT-1", entries[0].EntityID)
	assert.Equal(t, "ENT-2", entries[1].EntityID)
}

func TestNilOptionalDependencies(t *testing.T) {
	repo := &fakeRepo{records: map[string]*entity.EntityRecord{"ENT-1": testRecord("ENT-1")}}
	svc := NewService(repo, risk.NewEngine(nil), nil, nil, nil, logging.NewNopLogger(), 0)

	a, err := svc.AssessEntity(context.Background(), "ENT-1")
	require.NoError(t, err)
	assert.Equal(t, "ENT-1", a.EntityID)
}
