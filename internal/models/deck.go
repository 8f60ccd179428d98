package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDeck reads and validates a deck definition from a yaml file.
func LoadDeck(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	return ParseDeck(data)
}

// ParseDeck decodes and validates a yaml deck definition.
func ParseDeck(data []byte) (*Deck, error) {
	var deck Deck
	if err := yaml.Unmarshal(data, &deck); err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}
	if err := deck.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck: %w", err)
	}
	return &deck, nil
}
