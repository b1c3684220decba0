// Package prometheus defines and registers the riskintel application metrics.
// A single Metrics struct is constructed at startup and injected into the
// screening service and HTTP middleware; no package-level default registry
// state is used so tests can register against an isolated registry.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds every metric instrument exposed by the platform.
type Metrics struct {
	// HTTP layer
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Screening layer
	AssessmentsTotal   *prometheus.CounterVec   // labelled by risk tier
	ScoringDuration    prometheus.Histogram     // engine time only, excludes I/O
	ComponentScore     *prometheus.HistogramVec // per-extractor score distribution
	AssessmentFailures *prometheus.CounterVec   // labelled by error code

	// Cache layer
	CacheHitsTotal   prometheus.Counter
	CacheMissesTotal prometheus.Counter

	// Reference data
	ReferenceReloadsTotal prometheus.Counter
}

// scoringBuckets covers the expected sub-millisecond to tens-of-milliseconds
// range of a pure CPU scoring pass.
var scoringBuckets = []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1}

var httpDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// New registers all riskintel metrics with reg and returns the Metrics struct.
// Pass prometheus.DefaultRegisterer in production and a fresh
// prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "riskintel",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by method, path template and status code.",
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "riskintel",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and path template.",
			Buckets:   httpDurationBuckets,
		}, []string{"method", "path"}),

		AssessmentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "riskintel",
			Subsystem: "screening",
			Name:      "assessments_total",
			Help:      "Completed risk assessments by resulting tier.",
		}, []string{"tier"}),

		ScoringDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "riskintel",
			Subsystem: "screening",
			Name:      "scoring_duration_seconds",
			Help:      "Wall time of a single engine scoring pass.",
			Buckets:   scoringBuckets,
		}),

		ComponentScore: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "riskintel",
			Subsystem: "screening",
			Name:      "component_score",
			Help:      "Distribution of per-extractor component scores.",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}, []string{"component"}),

		AssessmentFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "riskintel",
			Subsystem: "screening",
			Name:      "assessment_failures_total",
			Help:      "Failed assessment requests by error code.",
		}, []string{"code"}),

		CacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "riskintel",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Assessment cache hits.",
		}),

		CacheMissesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "riskintel",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Assessment cache misses.",
		}),

		ReferenceReloadsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "riskintel",
			Subsystem: "reference",
			Name:      "reloads_total",
			Help:      "Successful hot reloads of the reference data snapshot.",
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AssessmentsTotal,
		m.ScoringDuration,
		m.ComponentScore,
		m.AssessmentFailures,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
		m.ReferenceReloadsTotal,
	)
	return m
}

// ObserveScoring records one completed scoring pass: its duration, tier, and
// the individual component scores.
func (m *Metrics) ObserveScoring(tier string, elapsed time.Duration, components map[string]float64) {
	if m == nil {
		return
	}
	m.AssessmentsTotal.WithLabelValues(tier).Inc()
	m.ScoringDuration.Observe(elapsed.Seconds())
	for name, score := range components {
		m.ComponentScore.WithLabelValues(name).Observe(score)
	}
}
