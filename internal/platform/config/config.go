package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	pkgstrings "cardwise/pkg/platform/strings"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendKV       = "kv"
)

// Notifier adapters.
const (
	NotifierLocal = "local"
	NotifierKafka = "kafka"
)

// Server captures process level configuration.
type Server struct {
	Addr      string
	LogLevel  string
	LogFormat string

	Redis       RedisConfig
	DatabaseURL string

	KVBackend        string
	SecretsBackend   string
	SecretsMasterKey string

	Notifier      string
	NotifyGranted bool
	KafkaBrokers  []string
	KafkaTopic    string

	SuggestionCooldown       time.Duration
	SuggestionTriggerDelay   time.Duration
	ArtValidationTimeout     time.Duration
	ArtValidationConcurrency int
}

// RedisConfig holds connection pool settings for the Redis client.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:      envOr("CARDWISE_ADDR", ":8080"),
		LogLevel:  envOr("LOG_LEVEL", "info"),
		LogFormat: envOr("LOG_FORMAT", "json"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		KVBackend:        strings.ToLower(envOr("KV_BACKEND", BackendMemory)),
		SecretsBackend:   strings.ToLower(envOr("SECRETS_BACKEND", BackendKV)),
		SecretsMasterKey: os.Getenv("SECRETS_MASTER_KEY"),
		Notifier:         strings.ToLower(envOr("NOTIFIER", NotifierLocal)),
		KafkaTopic:       envOr("KAFKA_TOPIC", "cardwise.suggestions"),
	}

	var err error
	if cfg.Redis.PoolSize, err = envInt("REDIS_POOL_SIZE", cfg.Redis.PoolSize); err != nil {
		return Server{}, err
	}
	if cfg.Redis.MinIdleConns, err = envInt("REDIS_MIN_IDLE_CONNS", cfg.Redis.MinIdleConns); err != nil {
		return Server{}, err
	}
	if cfg.Redis.DialTimeout, err = envDuration("REDIS_DIAL_TIMEOUT", cfg.Redis.DialTimeout); err != nil {
		return Server{}, err
	}
	if cfg.Redis.ReadTimeout, err = envDuration("REDIS_READ_TIMEOUT", cfg.Redis.ReadTimeout); err != nil {
		return Server{}, err
	}
	if cfg.Redis.WriteTimeout, err = envDuration("REDIS_WRITE_TIMEOUT", cfg.Redis.WriteTimeout); err != nil {
		return Server{}, err
	}
	if cfg.NotifyGranted, err = envBool("NOTIFY_GRANTED", true); err != nil {
		return Server{}, err
	}
	if cfg.SuggestionCooldown, err = envDuration("SUGGESTION_COOLDOWN", time.Hour); err != nil {
		return Server{}, err
	}
	if cfg.SuggestionTriggerDelay, err = envDuration("SUGGESTION_TRIGGER_DELAY", time.Second); err != nil {
		return Server{}, err
	}
	if cfg.ArtValidationTimeout, err = envDuration("ART_VALIDATION_TIMEOUT", 3*time.Second); err != nil {
		return Server{}, err
	}
	if cfg.ArtValidationConcurrency, err = envInt("ART_VALIDATION_CONCURRENCY", 4); err != nil {
		return Server{}, err
	}
	cfg.KafkaBrokers = pkgstrings.SplitList(os.Getenv("KAFKA_BROKERS"))

	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate checks that every selected backend has what it needs.
func (c Server) Validate() error {
	switch c.KVBackend {
	case BackendMemory:
	case BackendRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("KV_BACKEND=redis requires REDIS_URL")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("KV_BACKEND=postgres requires DATABASE_URL")
		}
	default:
		return fmt.Errorf("unknown KV_BACKEND %q", c.KVBackend)
	}

	switch c.SecretsBackend {
	case BackendKV:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("SECRETS_BACKEND=postgres requires DATABASE_URL")
		}
	default:
		return fmt.Errorf("unknown SECRETS_BACKEND %q", c.SecretsBackend)
	}

	switch c.Notifier {
	case NotifierLocal:
	case NotifierKafka:
		if len(c.KafkaBrokers) == 0 {
			return fmt.Errorf("NOTIFIER=kafka requires KAFKA_BROKERS")
		}
	default:
		return fmt.Errorf("unknown NOTIFIER %q", c.Notifier)
	}

	if c.SuggestionCooldown <= 0 {
		return fmt.Errorf("SUGGESTION_COOLDOWN must be positive")
	}
	if c.SuggestionTriggerDelay < 0 {
		return fmt.Errorf("SUGGESTION_TRIGGER_DELAY must not be negative")
	}
	if c.ArtValidationConcurrency <= 0 {
		return fmt.Errorf("ART_VALIDATION_CONCURRENCY must be positive")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}

// envDuration accepts Go durations ("90s") or bare seconds ("3600").
func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}
