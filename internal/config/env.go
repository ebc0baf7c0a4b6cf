// Package config loads process settings for the terrafutura binaries.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by the command-line tools. Flags given on
// the command line take precedence over these values.
type Config struct {
	Catalog string `env:"TERRAFUTURA_CATALOG" envDefault:"cards.yaml"`
	Journal string `env:"TERRAFUTURA_JOURNAL"` // empty disables the journal
	Pile    string `env:"TERRAFUTURA_PILE" envDefault:"I"`
	Board   string `env:"TERRAFUTURA_BOARD" envDefault:"demo"`
	Players int    `env:"TERRAFUTURA_PLAYERS" envDefault:"2"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the Config described by the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Players < 1 {
		return Config{}, fmt.Errorf("TERRAFUTURA_PLAYERS must be at least 1, got %d", cfg.Players)
	}
	return cfg, nil
}
