package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port int `envconfig:"PORT" default:"5000"`
	// DatabaseURL is the Postgres connection string.
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	// DBTLSSkipVerify disables certificate-chain verification on TLS
	// connections to the store. The managed Postgres this service targets
	// presents a certificate the default trust store rejects; this is an
	// explicit relaxation, not a recommendation.
	DBTLSSkipVerify bool `envconfig:"DB_TLS_SKIP_VERIFY" default:"true"`
	// AppEnv selects log level and format ("development" or "production").
	AppEnv string `envconfig:"APP_ENV" default:"development"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
