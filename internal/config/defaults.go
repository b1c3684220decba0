// Package config provides configuration loading, defaults, and validation for
// the riskintel service.
package config

import (
	"time"

	"github.com/sentineldata/riskintel/internal/domain/risk"
)

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultServerPort = 8080
	DefaultServerMode = "release"

	DefaultDBHost     = "localhost"
	DefaultDBPort     = 5432
	DefaultDBName     = "riskintel"
	DefaultDBMaxConns = 25

	DefaultRedisAddr      = "localhost:6379"
	DefaultRedisTTL       = 15 * time.Minute
	DefaultRedisKeyPrefix = "riskintel"

	DefaultKafkaBroker          = "localhost:9092"
	DefaultKafkaAssessmentTopic = "riskintel.assessments.completed"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// ApplyDefaults fills every zero-value field in cfg with the service default.
// Fields that have already been set by the caller (non-zero values) are left
// unchanged so that explicit configuration always wins.  It must run after
// unmarshalling and before Validate so that optional-but-defaulted fields are
// never seen as missing.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Server ────────────────────────────────────────────────────────────────
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}

	// ── Database ──────────────────────────────────────────────────────────────
	if cfg.Database.Host == "" {
		cfg.Database.Host = DefaultDBHost
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = DefaultDBPort
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "riskintel"
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = DefaultDBName
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = DefaultDBMaxConns
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MigrationPath == "" {
		cfg.Database.MigrationPath = "file://migrations"
	}

	// ── Redis ─────────────────────────────────────────────────────────────────
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = DefaultRedisAddr
	}
	if cfg.Redis.DefaultTTL == 0 {
		cfg.Redis.DefaultTTL = DefaultRedisTTL
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = DefaultRedisKeyPrefix
	}

	// ── Kafka ─────────────────────────────────────────────────────────────────
	if len(cfg.Kafka.Brokers) == 0 {
		cfg.Kafka.Brokers = []string{DefaultKafkaBroker}
	}
	if cfg.Kafka.AssessmentTopic == "" {
		cfg.Kafka.AssessmentTopic = DefaultKafkaAssessmentTopic
	}
	if cfg.Kafka.ProducerRetries == 0 {
		cfg.Kafka.ProducerRetries = 3
	}
	if cfg.Kafka.RequiredAcks == "" {
		cfg.Kafka.RequiredAcks = "all"
	}
	if cfg.Kafka.WriteTimeout == 0 {
		cfg.Kafka.WriteTimeout = 10 * time.Second
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	// ── Risk reference data ───────────────────────────────────────────────────
	applyReferenceDefaults(&cfg.Risk.Reference)
}

// applyReferenceDefaults fills unset reference tables from the built-in
// snapshot, table by table, so a config file may override just one table
// (say, geographic multipliers) and inherit the rest.
func applyReferenceDefaults(ref *risk.Reference) {
	def := risk.DefaultReference()

	if ref.Version == "" {
		ref.Version = def.Version
	}
	if len(ref.EventCategories) == 0 {
		ref.EventCategories = def.EventCategories
	}
	if len(ref.EventSubCategories) == 0 {
		ref.EventSubCategories = def.EventSubCategories
	}
	if len(ref.PEPRoles) == 0 {
		ref.PEPRoles = def.PEPRoles
	}
	if len(ref.GeographicMultipliers) == 0 {
		ref.GeographicMultipliers = def.GeographicMultipliers
	}
	if len(ref.SanctionedCountries) == 0 {
		ref.SanctionedCountries = def.SanctionedCountries
	}
	if len(ref.ConflictZones) == 0 {
		ref.ConflictZones = def.ConflictZones
	}
	if len(ref.Tiers) == 0 {
		ref.Tiers = def.Tiers
	}
	if ref.Weights.Sum() == 0 {
		ref.Weights = def.Weights
	}
	if len(ref.DecayRules) == 0 {
		ref.DecayRules = def.DecayRules
	}
	if ref.DecayDefault.Rate == 0 && ref.DecayDefault.Floor == 0 {
		ref.DecayDefault = def.DecayDefault
	}
	if len(ref.SynergyBoosts) == 0 {
		ref.SynergyBoosts = def.SynergyBoosts
	}
	if len(ref.PEPKeywords) == 0 {
		ref.PEPKeywords = def.PEPKeywords
	}
	if len(ref.FamilyAssociateRoles) == 0 {
		ref.FamilyAssociateRoles = def.FamilyAssociateRoles
	}
	if ref.HistoryCapacity == 0 {
		ref.HistoryCapacity = def.HistoryCapacity
	}
}
