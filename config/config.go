package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process configuration read from the environment
type Config struct {
	Port              string        `env:"PORT" envDefault:"8080"`
	DatabaseURL       string        `env:"DATABASE_URL" envDefault:"sqlite://portfolio.db"`
	AdminEmail        string        `env:"ADMIN_EMAIL"`
	AdminPassword     string        `env:"ADMIN_PASSWORD"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	SessionSecret     string        `env:"SESSION_SECRET"`
	SessionTTL        time.Duration `env:"SESSION_TTL" envDefault:"1h"`
	UseHTTPS          bool          `env:"USE_HTTPS" envDefault:"false"`
	StaticDir         string        `env:"STATIC_DIR" envDefault:"static"`
	Environment       string        `env:"APP_ENV" envDefault:"development"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadDotEnv loads variables from the given .env files (default ".env").
// A missing file is reported but callers usually treat it as a warning.
func LoadDotEnv(filenames ...string) error {
	return godotenv.Load(filenames...)
}

// Parse builds a Config from the current environment
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values the env tags cannot express
func (c *Config) Validate() error {
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	return nil
}

// AdminConfigured reports whether both halves of the admin credential are set
func (c *Config) AdminConfigured() bool {
	return c.AdminEmail != "" && (c.AdminPassword != "" || c.AdminPasswordHash != "")
}

// IsProduction reports whether APP_ENV selects production behaviour
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
