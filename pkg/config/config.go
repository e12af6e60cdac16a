// Package config loads tool configuration from TOML, YAML, or JSON files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for sustain.
type Config struct {
	// Custom emission factors by item name, in kg CO2e per unit. These
	// extend (and may override) the built-in factor table.
	Factors map[string]float64 `koanf:"factors"`

	// Model settings
	Model ModelConfig `koanf:"model"`

	// Cache settings
	Cache CacheConfig `koanf:"cache"`

	// Output settings
	Output OutputConfig `koanf:"output"`
}

// ModelConfig controls the scoring engine's boundary policies.
type ModelConfig struct {
	// Strict makes missing score cells an error instead of substituting
	// the neutral 5.
	Strict bool `koanf:"strict"`
	// Renormalize rescales summed totals onto 1-10 before ranking.
	Renormalize bool `koanf:"renormalize"`
	// DaysPerYear converts daily emissions to annual.
	DaysPerYear float64 `koanf:"days_per_year"`
}

// CacheConfig controls result caching.
type CacheConfig struct {
	Enabled bool   `koanf:"enabled"`
	Dir     string `koanf:"dir"`
	TTL     int    `koanf:"ttl"` // TTL in hours
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format string `koanf:"format"` // text, json, markdown, csv, toon
	Color  bool   `koanf:"color"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Factors: map[string]float64{},
		Model: ModelConfig{
			Strict:      false,
			Renormalize: true,
			DaysPerYear: 365,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     ".sustain/cache",
			TTL:     24,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Model.DaysPerYear <= 0 {
		return nil, fmt.Errorf("model.days_per_year must be positive (got %v)", cfg.Model.DaysPerYear)
	}

	return cfg, nil
}

// LoadOrDefault tries standard config locations and falls back to defaults.
func LoadOrDefault() *Config {
	configNames := []string{
		"sustain.toml",
		"sustain.yaml",
		"sustain.yml",
		"sustain.json",
		".sustain.toml",
		".sustain.yaml",
		".sustain.yml",
		".sustain.json",
	}
	searchDirs := []string{".", ".sustain"}

	for _, dir := range searchDirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				cfg, err := Load(path)
				if err == nil {
					return cfg
				}
			}
		}
	}

	return DefaultConfig()
}
