// Package redis provides the assessment cache: a thin client wrapper plus a
// typed cache facade with JSON serialization and stampede protection.
package redis

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sentineldata/riskintel/internal/config"
	"github.com/sentineldata/riskintel/internal/infrastructure/monitoring/logging"
	"github.com/sentineldata/riskintel/pkg/errors"
)

var (
	ErrClientClosed     = errors.New(errors.ErrCodeInternal, "redis client is closed")
	ErrConnectionFailed = errors.New(errors.ErrCodeCacheError, "redis connection failed")
)

// Client wraps a standalone go-redis client with lifecycle state.
type Client struct {
	rdb    *redis.Client
	logger logging.Logger
	mu     sync.RWMutex
	closed bool
}

// NewClient connects to Redis and verifies the connection.
func NewClient(cfg config.RedisConfig, log logging.Logger) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, ErrConnectionFailed.WithCause(err)
	}

	log.Info("connected to Redis", logging.String("addr", cfg.Addr))
	return &Client{rdb: rdb, logger: log}, nil
}

func (c *Client) guard() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// Get fetches a raw value.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	return c.rdb.Get(ctx, key).Bytes()
}

// Set stores a raw value with a TTL.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.guard(); err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// Del removes keys.
func (c *Client) Del(ctx context.Context, keys ...string) error {
	if err := c.guard(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// Exists reports whether the key is present.
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	if err := c.guard(); err != nil {
		return false, err
	}
	n, err := c.rdb.Exists(ctx, key).Result()
	return n > 0, err
}

// Ping checks connection health.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.guard(); err != nil {
		return err
	}
	return c.rdb.Ping(ctx).Err()
}

// Close shuts down the client; further calls return ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.logger.Info("closed Redis client")
	return c.rdb.Close()
}
