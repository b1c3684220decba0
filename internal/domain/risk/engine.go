package risk

import (
	"sync/atomic"
	"time"

	"github.com/sentineldata/riskintel/internal/domain/entity"
	"github.com/sentineldata/riskintel/internal/infrastructure/monitoring/logging"
)

// Engine is the scoring pipeline: classifier, eight extractors, correlation,
// ensemble, confidence, trajectory and tier classification over an atomically
// swappable reference snapshot.  Score is a pure function of (record,
// snapshot, now) and is safe to call concurrently; the only shared mutable
// state is the bounded history log.
type Engine struct {
	ref     atomic.Pointer[Reference]
	logger  logging.Logger
	clock   func() time.Time
	history *History
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithClock injects the time source, for deterministic scoring in tests.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithHistoryCapacity overrides the reference snapshot's history capacity.
func WithHistoryCapacity(n int) Option {
	return func(e *Engine) { e.history = NewHistory(n) }
}

// NewEngine builds an engine over an initial reference snapshot.  The
// snapshot should have passed Validate; nil falls back to the built-in
// defaults.
func NewEngine(ref *Reference, opts ...Option) *Engine {
	if ref == nil {
		ref = DefaultReference()
	}
	e := &Engine{
		logger: logging.NewNopLogger(),
		clock:  time.Now,
	}
	e.ref.Store(ref)
	for _, opt := range opts {
		opt(e)
	}
	if e.history == nil {
		e.history = NewHistory(ref.HistoryCapacity)
	}
	return e
}

// SetReference atomically swaps in a new reference snapshot.  In-flight
// scorings keep the snapshot they started with.
func (e *Engine) SetReference(ref *Reference) {
	if ref == nil {
		return
	}
	e.ref.Store(ref)
	e.logger.Info("reference data swapped", logging.String("version", ref.Version))
}

// Reference returns the current snapshot.
func (e *Engine) Reference() *Reference {
	return e.ref.Load()
}

// History returns a copy of the retained assessment summaries.
func (e *Engine) History() []HistoryEntry {
	return e.history.Snapshot()
}

// Score assesses a record as of the engine's clock.
func (e *Engine) Score(rec *entity.EntityRecord) *RiskAssessment {
	return e.ScoreAt(rec, e.clock())
}

// ScoreAt assesses a record as of an explicit instant.  Malformed or missing
// data degrades completeness and confidence; it never fails the call.
func (e *Engine) ScoreAt(rec *entity.EntityRecord, now time.Time) *RiskAssessment {
	ref := e.ref.Load()
	start := time.Now()

	profile := NewClassifier(ref).Classify(rec.Attributes)

	eventDetail := NewEventRiskExtractor(ref).Extract(rec.Events, now)
	pepDetail := NewPEPRiskExtractor(ref).Extract(profile)
	geoDetail := NewGeographicRiskExtractor(ref).Extract(rec.Addresses)
	relDetail := NewRelationshipRiskExtractor().Extract(rec.Relationships)
	temporalDetail := NewTemporalPatternExtractor().Extract(rec.Events, now)
	behaviorDetail := NewBehavioralPatternExtractor().Extract(rec)
	networkDetail := NewNetworkEffectExtractor().Extract(rec.Relationships)
	anomalyDetail := NewAnomalyDetector().Extract(rec)

	correlation := NewCorrelationAnalyzer().Analyze(
		eventDetail.Score, pepDetail.Score, geoDetail.Score, relDetail.Score)

	components := ComponentScores{
		EventScore:           eventDetail.Score,
		PEPScore:             pepDetail.Score,
		GeographicScore:      geoDetail.Score,
		RelationshipScore:    relDetail.Score,
		BehaviorScore:        behaviorDetail.Score,
		AnomalyScore:         anomalyDetail.Score,
		TemporalFactor:       temporalDetail.DecayFactor,
		NetworkAmplification: networkDetail.Amplification,
		CorrelationBonus:     correlation.Bonus,
	}
	ensemble := NewEnsembleScorer(ref).Combine(components)

	estimator := NewConfidenceEstimator()
	completeness := estimator.Completeness(rec)
	confidence := estimator.Estimate(completeness, ensemble.TotalScore, len(rec.Events))

	trajectory := NewTrajectoryPredictor().Predict(rec.Events, now)
	classification := Classify(ref, ensemble.TotalScore, confidence.Level)

	assessment := &RiskAssessment{
		EntityID:         rec.ID,
		TotalScore:       ensemble.TotalScore,
		ConfidenceScore:  confidence.Score,
		ConfidenceLevel:  confidence.Level,
		RiskLevel:        classification.Level,
		RiskColor:        classification.Color,
		RiskDescription:  classification.Description,
		UncertaintyRange: classification.Uncertainty,
		Trajectory:       trajectory,
		ComponentScores:  components,
		Analytics: AdvancedAnalytics{
			EventRisk:     eventDetail,
			PEPRisk:       pepDetail,
			Geographic:    geoDetail,
			Relationships: relDetail,
			Temporal:      temporalDetail,
			Behavior:      behaviorDetail,
			Network:       networkDetail,
			Anomalies:     anomalyDetail,
			Correlation:   correlation,
			Confidence:    confidence,
			Calculation:   ensemble.Steps,
		},
		Metadata: AssessmentMetadata{
			AlgorithmVersion:  AlgorithmVersion,
			ReferenceVersion:  ref.Version,
			Timestamp:         now,
			DataCompleteness:  completeness,
			FeatureImportance: ref.Weights,
		},
	}

	e.history.Append(HistoryEntry{
		EntityID:     rec.ID,
		TotalScore:   assessment.TotalScore,
		Confidence:   assessment.ConfidenceScore,
		Completeness: completeness.Percentage,
		Timestamp:    now,
	})

	e.logger.Debug("entity scored",
		logging.String("entity_id", rec.ID),
		logging.Float64("total_score", assessment.TotalScore),
		logging.String("risk_level", assessment.RiskLevel),
		logging.Float64("confidence", assessment.ConfidenceScore),
		logging.Duration("elapsed", time.Since(start)),
	)
	return assessment
}
