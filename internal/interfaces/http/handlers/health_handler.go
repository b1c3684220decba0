package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sentineldata/riskintel/pkg/types/common"
)

// healthCheckTimeout bounds each dependency probe.
const healthCheckTimeout = 3 * time.Second

// Pinger is a dependency that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to the Pinger interface.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler reports service and dependency health.
type HealthHandler struct {
	deps map[string]Pinger
}

// NewHealthHandler builds the handler over named dependency probes.
func NewHealthHandler(deps map[string]Pinger) *HealthHandler {
	return &HealthHandler{deps: deps}
}

// Liveness handles GET /healthz: the process is up.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": string(common.HealthHealthy)})
}

// Readiness handles GET /readyz: every dependency answers its probe.  A
// single failing dependency degrades the report and returns 503.
func (h *HealthHandler) Readiness(c *gin.Context) {
	overall := common.HealthHealthy
	components := make([]common.ComponentHealth, 0, len(h.deps))

	for name, dep := range h.deps {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		err := dep.Ping(ctx)
		cancel()

		ch := common.ComponentHealth{Name: name, Status: common.HealthHealthy}
		if err != nil {
			ch.Status = common.HealthUnhealthy
			ch.Message = err.Error()
			overall = common.HealthUnhealthy
		}
		components = append(components, ch)
	}

	status := http.StatusOK
	if overall != common.HealthHealthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"status": string(overall), "components": components})
}
