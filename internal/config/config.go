package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// postgres (catalog source)
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresUser   string `toml:"postgres_user"`
	PostgresDBName string `toml:"postgres_db_name"`

	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	RateLimitAllowedPerMin int      `toml:"rate_limit_allowed_per_min"`
	AllowedOrigins         []string `toml:"allowed_origins"`

	// identity
	ProfileURL      string          `toml:"profile_url"`
	FallbackProfile FallbackProfile `toml:"fallback_profile"`

	Catalog CatalogConfig `toml:"catalog"`
}

// FallbackProfile is used as the current user whenever the profile provider cannot be reached.
type FallbackProfile struct {
	ID        int64  `toml:"id"`
	FirstName string `toml:"first_name"`
	LastName  string `toml:"last_name"`
	Photo     string `toml:"photo"`
	City      string `toml:"city"`
}

const (
	CatalogSourceNone     = ""
	CatalogSourceRest     = "rest"
	CatalogSourcePostgres = "postgres"
)

type CatalogConfig struct {
	// Source is one of "rest", "postgres" or empty for an unseeded store.
	Source      string `toml:"source"`
	BaseURL     string `toml:"base_url"`
	CacheSize   int    `toml:"cache_size_mb"`
	CacheTTLSec int    `toml:"cache_ttl_sec"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		if t.Development == nil {
			return nil, errors.New("development config missing")
		}
		t.Development.Environment = "development"
		return t.Development, nil
	case "prod", "production":
		if t.Production == nil {
			return nil, errors.New("production config missing")
		}
		t.Production.Environment = "production"
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the config for the given env.
func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", path, err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}

	switch cfg.Catalog.Source {
	case CatalogSourceNone, CatalogSourceRest, CatalogSourcePostgres:
	default:
		return nil, fmt.Errorf("unknown catalog source: %s", cfg.Catalog.Source)
	}
	if cfg.Catalog.Source == CatalogSourceRest && cfg.Catalog.BaseURL == "" {
		return nil, errors.New("catalog base url must be set for the rest source")
	}

	return cfg, nil
}
