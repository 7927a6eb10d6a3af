package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel        slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	DefaultStack    string        `env:"DEFAULT_STACK" envDefault:"new_deck"`
	StackFiles      []string      `env:"STACK_FILES" envSeparator:","`
	LoadingDelay    time.Duration `env:"LOADING_DELAY" envDefault:"2s"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	MaxSessions     int           `env:"MAX_SESSIONS" envDefault:"10000"`
	Locale          language.Tag  `env:"LOCALE" envDefault:"en"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if c.DefaultStack == "" {
		return Config{}, fmt.Errorf("DEFAULT_STACK must not be empty")
	}
	if c.LoadingDelay < 0 {
		return Config{}, fmt.Errorf("invalid LOADING_DELAY %s: must not be negative", c.LoadingDelay)
	}
	if c.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("invalid SESSION_TTL %s: must be positive", c.SessionTTL)
	}
	if c.MaxSessions < 1 {
		return Config{}, fmt.Errorf("invalid MAX_SESSIONS %d: must be at least 1", c.MaxSessions)
	}

	return c, nil
}
