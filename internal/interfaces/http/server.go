package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sentineldata/riskintel/internal/config"
	"github.com/sentineldata/riskintel/internal/infrastructure/monitoring/logging"
)

// Server wraps http.Server with configured timeouts and graceful shutdown.
type Server struct {
	srv    *http.Server
	logger logging.Logger
	port   int
}

// NewServer builds the server over an assembled handler.
func NewServer(cfg config.ServerConfig, handler http.Handler, log logging.Logger) *Server {
	return &Server{
		logger: log,
		port:   cfg.Port,
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Start blocks serving requests until Stop is called or the listener fails.
func (s *Server) Start() error {
	s.logger.Info("http server listening", logging.Int("port", s.port))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop drains in-flight requests and shuts the server down.  The caller
// bounds the drain through ctx.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("http server stopped")
	return nil
}
