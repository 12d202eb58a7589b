package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	apperr "github.com/kevinkickback/fizbanes-forge-sub014/internal/errors"
)

// Config holds all configuration for the application, parsed from the
// environment. An empty Redis URL means the CLI falls back to the in-memory
// repository.
type Config struct {
	Redis      RedisConfig
	Compendium CompendiumConfig
	Owner      string `env:"FORGE_OWNER" envDefault:"local"`
}

// RedisConfig holds Redis-specific configuration.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// CompendiumConfig holds settings for the live compendium client.
type CompendiumConfig struct {
	Timeout time.Duration `env:"COMPENDIUM_TIMEOUT" envDefault:"30s"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, apperr.Wrap(err, "failed to parse environment")
	}
	return cfg, nil
}
