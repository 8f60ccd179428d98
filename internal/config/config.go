// Package config loads application configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	// DeckPath is the deck definition file.
	DeckPath string `env:"FEELINGS_DECK" envDefault:"data/deck.yaml"`
	// Language preselects a locale; empty shows the language menu.
	Language string `env:"FEELINGS_LANG"`
	// Seed, when non-zero, makes every draw and effect roll reproducible.
	Seed int64 `env:"FEELINGS_SEED"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
