package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config holds all process configuration. It is loaded once at startup and
// passed by reference into constructors; nothing reads the environment after
// Load returns.
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	AppName string `env:"APP_NAME" envDefault:"Go Auth API"`
	Env     string `env:"ENV" envDefault:"DEV"`

	DatabasePath string `env:"DATABASE_PATH" envDefault:"./data/auth.db"`

	AccessTokenSecret  string        `env:"JWT_ACCESS_SECRET"`
	RefreshTokenSecret string        `env:"JWT_REFRESH_SECRET"`
	AccessTokenExpiry  time.Duration `env:"JWT_ACCESS_EXPIRATION" envDefault:"15m"`
	RefreshTokenExpiry time.Duration `env:"JWT_REFRESH_EXPIRATION" envDefault:"168h"`
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "[config.Load] env.Parse")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the token signing configuration. Access and refresh secrets
// must both be set and must differ, otherwise a refresh token would verify as
// an access token.
func (c *Config) Validate() error {
	if c.AccessTokenSecret == "" {
		return errors.New("[config.Validate] JWT_ACCESS_SECRET is required")
	}
	if c.RefreshTokenSecret == "" {
		return errors.New("[config.Validate] JWT_REFRESH_SECRET is required")
	}
	if c.AccessTokenSecret == c.RefreshTokenSecret {
		return errors.New("[config.Validate] access and refresh secrets must differ")
	}
	if c.AccessTokenExpiry <= 0 || c.RefreshTokenExpiry <= 0 {
		return errors.New("[config.Validate] token expirations must be positive")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	if len(c.Port) > 0 && c.Port[0] == ':' {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// IsDev reports whether the server runs in the development environment.
func (c *Config) IsDev() bool {
	return c.Env == "DEV"
}
