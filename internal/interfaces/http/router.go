// Package http assembles the screening API route tree and the HTTP server
// lifecycle around it.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sentineldata/riskintel/internal/infrastructure/monitoring/logging"
	"github.com/sentineldata/riskintel/internal/infrastructure/monitoring/prometheus"
	"github.com/sentineldata/riskintel/internal/interfaces/http/handlers"
	"github.com/sentineldata/riskintel/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handler and middleware dependencies for the
// route tree.
type RouterConfig struct {
	Screening *handlers.ScreeningHandler
	Health    *handlers.HealthHandler

	// MetricsHandler serves GET /metrics; nil disables the endpoint.
	MetricsHandler http.Handler
	Metrics        *prometheus.Metrics

	Logger logging.Logger

	// Mode is the gin mode: debug, release or test.
	Mode string
}

// NewRouter constructs the complete route tree.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Logger != nil {
		r.Use(middleware.RequestLogger(cfg.Logger))
	}
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	if cfg.Health != nil {
		r.GET("/healthz", cfg.Health.Liveness)
		r.GET("/readyz", cfg.Health.Readiness)
	}
	if cfg.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(cfg.MetricsHandler))
	}

	api := r.Group("/api/v1")
	{
		screening := api.Group("/screening")
		{
			screening.POST("/:entityID/assess", cfg.Screening.Assess)
			screening.GET("/history", cfg.Screening.History)
		}
	}
	return r
}
