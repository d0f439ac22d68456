package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/murkotick/storefront-service/internal/pkg/cache"
)

const (
	CacheMemory = cache.BackendMemory
	CacheRedis  = cache.BackendRedis
	CacheNone   = cache.BackendNone
)

// Config holds every setting the binaries read from the environment.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	SpannerDatabase   string
	ConnectAttempts   uint
	ConnectBackoff    time.Duration
	ConnectMaxBackoff time.Duration

	CacheBackend  string
	CacheTTL      time.Duration
	CachePrefix   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers       []string
	OrderEventsTopic   string
	OutboxPollInterval time.Duration
	OutboxBatchSize    int

	DefaultCurrency string

	LogLevel  string
	LogFormat string
}

// Load reads an optional .env file (or the files named in files) and then
// the process environment. Real environment variables win over .env values.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	var errs []error
	c := &Config{
		HTTPAddr:         env("HTTP_ADDR", ":8080"),
		SpannerDatabase:  env("SPANNER_DATABASE", "projects/test-project/instances/emulator-instance/databases/test-db"),
		CacheBackend:     strings.ToLower(env("CACHE_BACKEND", CacheMemory)),
		CachePrefix:      env("CACHE_PREFIX", "storefront:"),
		RedisAddr:        env("REDIS_ADDR", ""),
		RedisPassword:    env("REDIS_PASSWORD", ""),
		OrderEventsTopic: env("ORDER_EVENTS_TOPIC", "orders"),
		DefaultCurrency:  strings.ToUpper(env("DEFAULT_CURRENCY", "USD")),
		LogLevel:         env("LOG_LEVEL", "info"),
		LogFormat:        env("LOG_FORMAT", "text"),
		KafkaBrokers:     envList("KAFKA_BROKERS"),
	}

	c.ShutdownTimeout = envDuration("SHUTDOWN_TIMEOUT", 5*time.Second, &errs)
	c.ConnectBackoff = envDuration("DB_CONNECT_BACKOFF", 500*time.Millisecond, &errs)
	c.ConnectMaxBackoff = envDuration("DB_CONNECT_MAX_BACKOFF", 5*time.Second, &errs)
	c.CacheTTL = envDuration("CACHE_TTL", 300*time.Second, &errs)
	c.OutboxPollInterval = envDuration("OUTBOX_POLL_INTERVAL", 2*time.Second, &errs)
	c.ConnectAttempts = uint(envInt("DB_CONNECT_ATTEMPTS", 5, &errs))
	c.RedisDB = envInt("REDIS_DB", 0, &errs)
	c.OutboxBatchSize = envInt("OUTBOX_BATCH_SIZE", 100, &errs)

	if err := c.validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

func (c *Config) validate() error {
	switch c.CacheBackend {
	case CacheMemory, CacheNone:
	case CacheRedis:
		if c.RedisAddr == "" {
			return errors.New("config: REDIS_ADDR is required when CACHE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("config: unknown CACHE_BACKEND %q", c.CacheBackend)
	}
	if c.ConnectAttempts == 0 {
		return errors.New("config: DB_CONNECT_ATTEMPTS must be at least 1")
	}
	if c.OutboxBatchSize <= 0 {
		return errors.New("config: OUTBOX_BATCH_SIZE must be positive")
	}
	return nil
}

func env(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// envDuration accepts Go durations ("2s") or a bare number of seconds ("300").
func envDuration(key string, def time.Duration, errs *[]error) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("config: %s: %w", key, err))
		return def
	}
	return d
}

func envInt(key string, def int, errs *[]error) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		*errs = append(*errs, fmt.Errorf("config: %s must be a non-negative integer, got %q", key, raw))
		return def
	}
	return n
}
