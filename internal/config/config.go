package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/vaultpass/passgen/internal/password"
)

var ErrProductionSecret = errors.New("JWT_SECRET must be set in production environment")

type Config struct {
	Port           string        `envconfig:"PORT" default:"8080"`
	Env            string        `envconfig:"ENV" default:"development"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	JWTSecret      string        `envconfig:"JWT_SECRET"`
	JWTExpiry      time.Duration `envconfig:"JWT_EXPIRY" default:"24h"`
	RateLimitRPS   float64       `envconfig:"RATE_LIMIT_RPS" default:"5"`
	RateLimitBurst int           `envconfig:"RATE_LIMIT_BURST" default:"10"`
	DefaultLength  int           `envconfig:"DEFAULT_LENGTH" default:"16"`
	MaxCount       int           `envconfig:"MAX_COUNT" default:"50"`
}

// AuthEnabled reports whether API routes require a bearer token.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}

	if cfg.IsProduction() && !cfg.AuthEnabled() {
		return Config{}, ErrProductionSecret
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return Config{}, fmt.Errorf("rate limit must be positive: rps=%v burst=%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	// Requests that omit length use every class, so the default must fit all of them.
	if minLen := len(password.AllClasses()); cfg.DefaultLength < minLen || cfg.DefaultLength > password.MaxLength {
		return Config{}, fmt.Errorf("DEFAULT_LENGTH must be between %d and %d, got %d", minLen, password.MaxLength, cfg.DefaultLength)
	}
	if cfg.MaxCount < 1 {
		return Config{}, fmt.Errorf("MAX_COUNT must be at least 1, got %d", cfg.MaxCount)
	}
	if !cfg.AuthEnabled() {
		slog.Warn("JWT_SECRET not set, API routes are unauthenticated")
	}

	return cfg, nil
}
