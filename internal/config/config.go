// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Defaults for the CLI configuration.
const (
	DefaultLogLevel         = "info"
	DefaultRadix            = "hex"
	DefaultAvalancheSamples = 100000
)

// Config holds runtime configuration for the xbits CLI, loaded from
// YAML with environment-variable overrides. The core library takes no
// configuration; everything here shapes output and diagnostics only.
type Config struct {
	Debug     bool            `yaml:"debug"`     // Enable debug mode (verbose logging).
	LogLevel  string          `yaml:"log_level"` // Logging level ("debug", "info", "warn", "error").
	Radix     string          `yaml:"radix"`     // Output radix for results: "bin", "dec" or "hex".
	Avalanche AvalancheConfig `yaml:"avalanche"` // Avalanche measurement settings.
}

// AvalancheConfig holds settings for the avalanche diagnostic.
type AvalancheConfig struct {
	Samples int    `yaml:"samples"` // Random inputs per measurement run.
	Seed    uint64 `yaml:"seed"`    // RNG seed; a fixed seed makes runs reproducible.
}

// NewConfig returns a Config populated with built-in defaults.
func NewConfig() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Radix:    DefaultRadix,
		Avalanche: AvalancheConfig{
			Samples: DefaultAvalancheSamples,
			Seed:    1,
		},
	}
}

// defaultSearchPaths are tried in order when no explicit path is given.
var defaultSearchPaths = []string{"xbits.yaml", "config.yaml"}

// LoadConfig loads configuration from the YAML file at path. If path
// is empty it searches the default locations; if no file is found the
// built-in defaults are used. Environment overrides are applied after
// the file, then the result is validated.
func LoadConfig(path string) (*Config, error) {
	cfg := NewConfig()

	if path == "" {
		for _, candidate := range defaultSearchPaths {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %q: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets environment variables win over file values.
func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("XBITS_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("XBITS_RADIX"); ok {
		cfg.Radix = v
	}
	if v, ok := os.LookupEnv("XBITS_DEBUG"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
	if v, ok := os.LookupEnv("XBITS_AVALANCHE_SAMPLES"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Avalanche.Samples = n
		}
	}
}

// Validate checks the final configuration for values the CLI cannot
// work with.
func (c *Config) Validate() error {
	switch c.Radix {
	case "bin", "dec", "hex":
	default:
		return fmt.Errorf("invalid radix %q: must be bin, dec or hex", c.Radix)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if c.Avalanche.Samples <= 0 {
		return fmt.Errorf("avalanche samples must be positive, got %d", c.Avalanche.Samples)
	}
	return nil
}
