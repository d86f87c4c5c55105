// internal/config/config.go
//
// Typed runtime configuration for the checkers server.
// Load reads an optional .env file and then parses the environment into a
// Config struct, so every setting has one declared name and default
// instead of ad hoc os.Getenv lookups scattered through the handlers.

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting the server reads from the environment.
type Config struct {
	Port           string `env:"PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	DatabasePath   string `env:"DATABASE_PATH" envDefault:"./data/checkers.db"`
	ClientOrigin   string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	JWTSecret      string `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	JWTExpiresDays int    `env:"JWT_EXPIRES_DAYS" envDefault:"14"`
	CookieName     string `env:"COOKIE_NAME" envDefault:"checkers_token"`
	AnonCookieName string `env:"ANON_COOKIE_NAME" envDefault:"checkers_anon"`
	CookieSecure   bool   `env:"COOKIE_SECURE" envDefault:"false"`
}

// Load reads .env when present, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
