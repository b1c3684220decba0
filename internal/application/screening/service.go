// Package screening provides the application-level service for entity risk
// assessment.  It sits between the HTTP/CLI handlers and the domain engine,
// adding caching, persistence access, event publication and metrics around
// the pure scoring pipeline.
package screening

import (
	"context"
	"time"

	"github.com/sentineldata/riskintel/internal/domain/entity"
	"github.com/sentineldata/riskintel/internal/domain/risk"
	"github.com/sentineldata/riskintel/internal/infrastructure/monitoring/logging"
	"github.com/sentineldata/riskintel/internal/infrastructure/monitoring/prometheus"
	"github.com/sentineldata/riskintel/pkg/errors"
	"github.com/sentineldata/riskintel/pkg/types/common"
)

// publishTimeout bounds the fire-and-forget publication of a completed
// assessment so a slow broker never holds up the caller's goroutine pool.
const publishTimeout = 10 * time.Second

// AssessmentCache stores serialized assessments keyed by entity ID.  A miss
// is reported as an error carrying ErrCodeNotFound.
type AssessmentCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// AssessmentPublisher emits a completed assessment to downstream consumers.
type AssessmentPublisher interface {
	PublishAssessment(ctx context.Context, a *risk.RiskAssessment) error
}

// Service defines the screening operations exposed to the interface layer.
type Service interface {
	// AssessEntity returns the entity's risk assessment, served from cache
	// when a fresh one exists.
	AssessEntity(ctx context.Context, entityID string) (*risk.RiskAssessment, error)

	// ReassessEntity forces a fresh scoring pass, replacing any cached
	// assessment.
	ReassessEntity(ctx context.Context, entityID string) (*risk.RiskAssessment, error)

	// History returns the engine's retained assessment summaries.
	History(ctx context.Context) []risk.HistoryEntry
}

type service struct {
	repo      entity.Repository
	engine    *risk.Engine
	cache     AssessmentCache
	publisher AssessmentPublisher
	metrics   *prometheus.Metrics
	logger    logging.Logger
	cacheTTL  time.Duration
}

// NewService wires the screening service.  cache, publisher and metrics may
// be nil; the corresponding step is then skipped.
func NewService(
	repo entity.Repository,
	engine *risk.Engine,
	cache AssessmentCache,
	publisher AssessmentPublisher,
	metrics *prometheus.Metrics,
	log logging.Logger,
	cacheTTL time.Duration,
) Service {
	return &service{
		repo:      repo,
		engine:    engine,
		cache:     cache,
		publisher: publisher,
		metrics:   metrics,
		logger:    log,
		cacheTTL:  cacheTTL,
	}
}

func cacheKey(entityID string) string {
	return "assessment:" + entityID
}

func (s *service) AssessEntity(ctx context.Context, entityID string) (*risk.RiskAssessment, error) {
	if err := common.ID(entityID).Validate(); err != nil {
		return nil, errors.New(errors.ErrCodeEntityIDInvalid, "invalid entity id").WithDetail(err.Error())
	}

	if s.cache != nil {
		var cached risk.RiskAssessment
		err := s.cache.Get(ctx, cacheKey(entityID), &cached)
		if err == nil {
			s.incCacheHit()
			return &cached, nil
		}
		if !errors.IsCode(err, errors.ErrCodeNotFound) {
			s.logger.Warn("assessment cache read failed",
				logging.String("entity_id", entityID), logging.Err(err))
		}
		s.incCacheMiss()
	}

	return s.assess(ctx, entityID)
}

func (s *service) ReassessEntity(ctx context.Context, entityID string) (*risk.RiskAssessment, error) {
	if err := common.ID(entityID).Validate(); err != nil {
		return nil, errors.New(errors.ErrCodeEntityIDInvalid, "invalid entity id").WithDetail(err.Error())
	}
	return s.assess(ctx, entityID)
}

func (s *service) History(_ context.Context) []risk.HistoryEntry {
	return s.engine.History()
}

// assess runs the full pipeline: load, score, cache, publish, observe.
func (s *service) assess(ctx context.Context, entityID string) (*risk.RiskAssessment, error) {
	rec, err := s.repo.GetByID(ctx, entityID)
	if err != nil {
		if errors.IsCode(err, errors.ErrCodeEntityNotFound) {
			s.observeFailure(errors.ErrCodeEntityNotFound)
			return nil, err
		}
		s.observeFailure(errors.ErrCodeProfileFetchFailed)
		return nil, errors.Wrap(err, errors.ErrCodeProfileFetchFailed, "failed to load entity profile").WithDetail(entityID)
	}

	start := time.Now()
	assessment := s.engine.Score(rec)
	elapsed := time.Since(start)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey(entityID), assessment, s.cacheTTL); err != nil {
			s.logger.Warn("assessment cache write failed",
				logging.String("entity_id", entityID), logging.Err(err))
		}
	}

	s.publish(assessment)
	s.metrics.ObserveScoring(assessment.RiskLevel, elapsed, componentMap(assessment.ComponentScores))

	s.logger.Info("entity assessed",
		logging.String("entity_id", entityID),
		logging.Float64("total_score", assessment.TotalScore),
		logging.String("risk_level", assessment.RiskLevel),
	)
	return assessment, nil
}

// publish hands the assessment to downstream consumers without blocking the
// request; a publish failure is logged, never surfaced to the caller.
func (s *service) publish(a *risk.RiskAssessment) {
	if s.publisher == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := s.publisher.PublishAssessment(ctx, a); err != nil {
			s.logger.Error("failed to publish assessment",
				logging.String("entity_id", a.EntityID), logging.Err(err))
		}
	}()
}

func componentMap(c risk.ComponentScores) map[string]float64 {
	return map[string]float64{
		"events":        c.EventScore,
		"pep":           c.PEPScore,
		"geographic":    c.GeographicScore,
		"relationships": c.RelationshipScore,
		"behavior":      c.BehaviorScore,
		"anomalies":     c.AnomalyScore,
	}
}

func (s *service) incCacheHit() {
	if s.metrics != nil {
		s.metrics.CacheHitsTotal.Inc()
	}
}

func (s *service) incCacheMiss() {
	if s.metrics != nil {
		s.metrics.CacheMissesTotal.Inc()
	}
}

func (s *service) observeFailure(code errors.ErrorCode) {
	if s.metrics != nil {
		s.metrics.AssessmentFailures.WithLabelValues(string(code)).Inc()
	}
}
