// Package middleware provides the gin middleware chain for the screening
// API: request logging and prometheus instrumentation.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sentineldata/riskintel/internal/infrastructure/monitoring/logging"
)

// RequestIDHeader carries the request correlation ID.
const RequestIDHeader = "X-Request-ID"

// RequestLogger logs one line per request with method, path, status, latency
// and the correlation ID.  An inbound X-Request-ID is propagated, otherwise
// a fresh one is generated.
func RequestLogger(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)
		c.Set("request_id", requestID)

		start := time.Now()
		c.Next()

		log.Info("http request",
			logging.String("request_id", requestID),
			logging.String("method", c.Request.Method),
			logging.String("path", c.FullPath()),
			logging.Int("status", c.Writer.Status()),
			logging.Duration("latency", time.Since(start)),
			logging.String("client_ip", c.ClientIP()),
		)
	}
}
