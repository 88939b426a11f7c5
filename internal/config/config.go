// Package config loads gridseek application settings from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all gridseek configuration.
type Config struct {
	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Benchmark harness
	Bench BenchConfig `yaml:"bench"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Bench: BenchConfig{
			MinSize:   1,
			MaxSize:   39,
			Step:      1,
			Seed:      9001,
			Shift:     2,
			Repeats:   3,
			OutputDir: "bench-out",
			Formats:   []string{FormatJSON, FormatPNG, FormatHTML},
		},
	}
}

// Load loads configuration from a YAML file over the defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if lvl := os.Getenv("GRIDSEEK_LOG_LEVEL"); lvl != "" {
		c.Logging.Level = lvl
	}
	if dir := os.Getenv("GRIDSEEK_OUTPUT_DIR"); dir != "" {
		c.Bench.OutputDir = dir
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}

	return c.Bench.Validate()
}
