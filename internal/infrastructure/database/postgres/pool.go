// Package postgres manages the PostgreSQL connection pool and schema
// migrations for the entity profile store.
package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sentineldata/riskintel/internal/config"
	"github.com/sentineldata/riskintel/internal/infrastructure/monitoring/logging"
	"github.com/sentineldata/riskintel/pkg/errors"
)

// Pool wraps a pgx connection pool with lifecycle logging and health checks.
type Pool struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// NewPool connects to PostgreSQL and verifies the connection.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, log logging.Logger) (*Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "invalid database configuration")
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = int32(cfg.MaxConns)
	}
	if cfg.MinConns > 0 {
		pc.MinConns = int32(cfg.MinConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		pc.MaxConnLifetime = cfg.ConnMaxLifetime
	}
	if cfg.ConnMaxIdleTime > 0 {
		pc.MaxConnIdleTime = cfg.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to create connection pool")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "database connection failed")
	}

	log.Info("connected to PostgreSQL",
		logging.String("host", cfg.Host),
		logging.Int("port", cfg.Port),
		logging.String("database", cfg.DBName),
	)
	return &Pool{pool: pool, logger: log}, nil
}

// Pool returns the underlying pgx pool.
func (p *Pool) Pool() *pgxpool.Pool {
	return p.pool
}

// HealthCheck verifies the database connection status.
func (p *Pool) HealthCheck(ctx context.Context) error {
	if err := p.pool.Ping(ctx); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "database health check failed")
	}
	return nil
}

// Close shuts down the pool.
func (p *Pool) Close() {
	p.pool.Close()
	p.logger.Info("closed PostgreSQL connection pool")
}
