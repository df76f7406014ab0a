// Package config loads numsys settings from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/govalues/numeral"
)

// Config holds the settings shared by all commands.
// Command-line flags take precedence over these values.
type Config struct {
	Base     int    `env:"NUMSYS_BASE" envDefault:"10"`
	Lang     string `env:"NUMSYS_LANG" envDefault:"en"`
	LogLevel string `env:"NUMSYS_LOG_LEVEL" envDefault:"info"`
	// Seed of the problem generator; 0 selects a time-based seed.
	Seed uint64 `env:"NUMSYS_SEED" envDefault:"0"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the configuration read from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Base < numeral.MinBase || cfg.Base > numeral.MaxBase {
		return Config{}, fmt.Errorf("NUMSYS_BASE: %w", &numeral.InvalidBaseError{Base: cfg.Base})
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level returns the log level named by LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("NUMSYS_LOG_LEVEL: %w", err)
	}
	return level, nil
}
