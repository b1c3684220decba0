package postgres

import (
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/sentineldata/riskintel/internal/config"
	"github.com/sentineldata/riskintel/internal/infrastructure/monitoring/logging"
	"github.com/sentineldata/riskintel/pkg/errors"
)

// RunMigrations applies all pending schema migrations from the configured
// source.  A database already at the latest version is not an error.
func RunMigrations(cfg config.DatabaseConfig, log logging.Logger) error {
	m, err := migrate.New(cfg.MigrationPath, "pgx5://"+trimScheme(cfg.DSN()))
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to create migrate instance")
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to run migrations")
	}

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		log.Warn("failed to read migration version", logging.Err(err))
		return nil
	}
	log.Info("database migrations completed",
		logging.Int64("version", int64(version)),
		logging.Bool("dirty", dirty),
	)
	return nil
}

// trimScheme strips the "postgres://" prefix so the DSN can be re-schemed
// for the migrate pgx driver.
func trimScheme(dsn string) string {
	const scheme = "postgres://"
	if len(dsn) > len(scheme) && dsn[:len(scheme)] == scheme {
		return dsn[len(scheme):]
	}
	return dsn
}
