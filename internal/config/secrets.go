package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Secrets never live in the TOML file, they are read from the environment.
type Secrets struct {
	RedisPassword    string `env:"GYMTRACKER_REDIS_PASS"`
	PostgresPassword string `env:"GYMTRACKER_POSTGRES_PASS"`
	APITokenHash     string `env:"GYMTRACKER_API_TOKEN_HASH"`
	ProfileToken     string `env:"GYMTRACKER_PROFILE_TOKEN"`
	SentryDSN        string `env:"SENTRY_DSN"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED" envDefault:"false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
	OtelServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"gymtracker"`
}

func LoadSecrets() (*Secrets, error) {
	secrets, err := env.ParseAs[Secrets]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &secrets, nil
}
