package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all service settings.
const envPrefix = "RISKINTEL"

// newViper builds a pre-configured Viper instance with the service's standard
// settings: YAML file type, RISKINTEL_ env prefix, automatic env binding, and
// a key replacer that maps "." → "_" so that nested keys like "database.host"
// resolve to "RISKINTEL_DATABASE_HOST".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Unmarshal only sees explicitly bound env keys, so bind every scalar
	// setting; reference tables are file-only.
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}
	return v
}

var envKeys = []string{
	"server.port", "server.mode", "server.read_timeout", "server.write_timeout",
	"server.shutdown_timeout",
	"database.host", "database.port", "database.user", "database.password",
	"database.db_name", "database.ssl_mode", "database.max_conns",
	"database.min_conns", "database.conn_max_lifetime",
	"database.conn_max_idle_time", "database.migration_path",
	"redis.addr", "redis.password", "redis.db", "redis.pool_size",
	"redis.min_idle_conns", "redis.dial_timeout", "redis.read_timeout",
	"redis.write_timeout", "redis.default_ttl", "redis.key_prefix",
	"kafka.brokers", "kafka.assessment_topic", "kafka.producer_retries",
	"kafka.batch_size", "kafka.write_timeout", "kafka.required_acks",
	"kafka.enabled",
	"log.level", "log.format",
}

// Load reads the YAML file at configPath, merges any RISKINTEL_* environment
// variable overrides, applies service defaults for unset fields, and
// validates the result.  It returns a fully-populated *Config or a
// descriptive error.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from RISKINTEL_* environment variables
// and defaults, with no config file required.  This is the preferred loading
// strategy for containerised deployments; the reference tables then come from
// the built-in snapshot.
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

// unmarshalAndFinalize unmarshals viper state into a Config struct, applies
// defaults, and validates the result.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath for changes and invokes onChange with the newly
// parsed Config whenever the file is modified on disk.  Its main consumer is
// reference-data hot reload: the caller hands the fresh snapshot to the
// engine, which swaps it atomically under in-flight scorings.
//
// Watch is non-blocking; it starts a background goroutine managed by viper.
// A change that fails to parse or validate is dropped without invoking
// onChange, so the running service never picks up a broken snapshot.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read — errors are ignored here; callers should call Load first.
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
}

// MustLoad is a convenience wrapper around Load that panics on any error.
// It is intended for use in main() where a config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
