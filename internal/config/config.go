// Package config loads application configuration from the environment.
//
// We use cleanenv rather than hand-rolled os.Getenv parsing: the Config
// struct is the single source of truth, defaults live in struct tags
// next to the fields they belong to, and type conversion (ints,
// durations) comes for free.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds everything the server needs to start.
type Config struct {
	// Port the HTTP server listens on.
	Port int `env:"PORT" env-default:"8080"`

	// DBPath is the SQLite database file. ":memory:" gives an
	// in-process throwaway database, which the tests rely on.
	DBPath string `env:"DB_PATH" env-default:"data/newsnote.db"`

	// JWTSecret signs session cookies. Must be at least 16 bytes;
	// generate with: openssl rand -hex 32
	JWTSecret string `env:"JWT_SECRET"`

	// SessionTTL is how long a login cookie stays valid.
	SessionTTL time.Duration `env:"SESSION_TTL" env-default:"24h"`

	// NewsPerPage caps the home-page news listing.
	NewsPerPage int `env:"NEWS_PER_PAGE" env-default:"10"`
}

// Load reads the configuration from environment variables and validates
// the parts that have no safe default.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: reading environment: %w", err)
	}

	if len(cfg.JWTSecret) < 16 {
		return nil, fmt.Errorf("config: JWT_SECRET must be at least 16 characters")
	}
	if cfg.NewsPerPage <= 0 {
		return nil, fmt.Errorf("config: NEWS_PER_PAGE must be positive, got %d", cfg.NewsPerPage)
	}

	return &cfg, nil
}
