package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sentineldata/riskintel/internal/application/screening"
	"github.com/sentineldata/riskintel/internal/infrastructure/monitoring/logging"
)

// ScreeningHandler exposes the entity risk assessment endpoints.
type ScreeningHandler struct {
	service screening.Service
	logger  logging.Logger
}

// NewScreeningHandler builds the handler.
func NewScreeningHandler(svc screening.Service, log logging.Logger) *ScreeningHandler {
	return &ScreeningHandler{service: svc, logger: log}
}

// Assess handles POST /api/v1/screening/:entityID/assess.
// A cached assessment is returned when fresh; pass refresh=true to force a
// new scoring pass.
func (h *ScreeningHandler) Assess(c *gin.Context) {
	entityID := c.Param("entityID")
	refresh := c.Query("refresh") == "true"

	var err error
	var assessment interface{}
	if refresh {
		assessment, err = h.service.ReassessEntity(c.Request.Context(), entityID)
	} else {
		assessment, err = h.service.AssessEntity(c.Request.Context(), entityID)
	}
	if err != nil {
		h.logger.Warn("assessment request failed",
			logging.String("entity_id", entityID), logging.Err(err))
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, assessment)
}

// History handles GET /api/v1/screening/history: the engine's retained
// assessment summaries, most recent last.
func (h *ScreeningHandler) History(c *gin.Context) {
	respondOK(c, http.StatusOK, h.service.History(c.Request.Context()))
}
