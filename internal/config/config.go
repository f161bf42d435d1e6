package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file expected at the book directory root.
const FileName = "tally.yaml"

// Config represents the top-level tally.yaml configuration.
type Config struct {
	Book     BookConfig     `yaml:"book"`
	Currency CurrencyConfig `yaml:"currency"`
}

// BookConfig locates the book database.
type BookConfig struct {
	Path string `yaml:"path"`
}

// CurrencyConfig holds the user's reporting currency.
type CurrencyConfig struct {
	Main string `yaml:"main"` // ISO code, e.g. "EUR"
}

// Load reads a tally.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new book.
func Default(bookPath, mainCurrency string) *Config {
	return &Config{
		Book:     BookConfig{Path: bookPath},
		Currency: CurrencyConfig{Main: mainCurrency},
	}
}
