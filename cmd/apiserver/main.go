// apiserver is the screening API entry point.  It wires config, logging,
// storage, cache, messaging, the scoring engine and the HTTP server, then
// runs until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sentineldata/riskintel/internal/application/screening"
	"github.com/sentineldata/riskintel/internal/config"
	"github.com/sentineldata/riskintel/internal/domain/risk"
	"github.com/sentineldata/riskintel/internal/infrastructure/database/postgres"
	"github.com/sentineldata/riskintel/internal/infrastructure/database/postgres/repositories"
	"github.com/sentineldata/riskintel/internal/infrastructure/database/redis"
	"github.com/sentineldata/riskintel/internal/infrastructure/messaging/kafka"
	"github.com/sentineldata/riskintel/internal/infrastructure/monitoring/logging"
	"github.com/sentineldata/riskintel/internal/infrastructure/monitoring/prometheus"
	httpserver "github.com/sentineldata/riskintel/internal/interfaces/http"
	"github.com/sentineldata/riskintel/internal/interfaces/http/handlers"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (env-only when empty)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Storage.
	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()
	if err := postgres.RunMigrations(cfg.Database, logger); err != nil {
		return err
	}
	repo := repositories.NewEntityRepository(pool.Pool(), logger)

	// Cache.
	redisClient, err := redis.NewClient(cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer redisClient.Close()
	cache := redis.NewCache(redisClient, logger,
		redis.WithPrefix(cfg.Redis.KeyPrefix+":"),
		redis.WithDefaultTTL(cfg.Redis.DefaultTTL),
	)

	// Messaging.
	var publisher screening.AssessmentPublisher
	pingers := map[string]handlers.Pinger{
		"postgres": handlers.PingerFunc(pool.HealthCheck),
		"redis":    handlers.PingerFunc(redisClient.Ping),
	}
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(cfg.Kafka, logger)
		if err != nil {
			return err
		}
		defer producer.Close()
		publisher = producer
	}

	// Metrics.
	metrics := prometheus.New(promclient.DefaultRegisterer)

	// Engine over the configured reference snapshot.
	ref := cfg.Risk.Reference
	engine := risk.NewEngine(&ref, risk.WithLogger(logger.Named("engine")))

	// Reference hot reload: a config file change swaps the snapshot under
	// in-flight scorings; invalid files are dropped by the watcher.
	if configPath != "" {
		config.Watch(configPath, func(next *config.Config) {
			nextRef := next.Risk.Reference
			engine.SetReference(&nextRef)
			metrics.ReferenceReloadsTotal.Inc()
		})
	}

	svc := screening.NewService(repo, engine, cache, publisher, metrics,
		logger.Named("screening"), cfg.Redis.DefaultTTL)

	router := httpserver.NewRouter(httpserver.RouterConfig{
		Screening:      handlers.NewScreeningHandler(svc, logger.Named("http")),
		Health:         handlers.NewHealthHandler(pingers),
		MetricsHandler: promhttp.Handler(),
		Metrics:        metrics,
		Logger:         logger.Named("http"),
		Mode:           cfg.Server.Mode,
	})
	server := httpserver.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return server.Stop(shutdownCtx)
}

func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		return config.LoadFromEnv()
	}
	return config.Load(configPath)
}
