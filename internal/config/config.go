// Package config holds latticeproof tool configuration: loader behaviour,
// output sink and logging. The proof-burden core reads none of it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all latticeproof configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Program loading
	Loader LoaderConfig `yaml:"loader"`

	// Proof burden output
	Output OutputConfig `yaml:"output"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LoaderConfig configures how program manifests and clause sources are read.
type LoaderConfig struct {
	AnalyzeClauses bool `yaml:"analyze_clauses"` // run Mangle semantic analysis on clause source
}

// OutputConfig configures the proof burden sink.
type OutputConfig struct {
	Path   string `yaml:"path"`   // empty = stdout
	Indent string `yaml:"indent"` // disjunct indentation unit
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "latticeproof",
		Version: "0.3.0",

		Loader: LoaderConfig{
			AnalyzeClauses: false,
		},

		Output: OutputConfig{
			Path:   "",
			Indent: "  ",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
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

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("LATTICEPROOF_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if out := os.Getenv("LATTICEPROOF_OUTPUT"); out != "" {
		c.Output.Path = out
	}
	if v := os.Getenv("LATTICEPROOF_ANALYZE"); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "on":
			c.Loader.AnalyzeClauses = true
		case "0", "false", "no", "off":
			c.Loader.AnalyzeClauses = false
		}
	}
}

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// ValidFormats lists the accepted logging formats.
var ValidFormats = []string{"console", "json"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if !contains(ValidFormats, c.Logging.Format) {
		return fmt.Errorf("invalid logging format: %s (valid: %v)", c.Logging.Format, ValidFormats)
	}
	if c.Output.Indent == "" {
		return fmt.Errorf("output indent must not be empty")
	}
	if strings.TrimSpace(c.Output.Indent) != "" {
		return fmt.Errorf("output indent must be whitespace, got %q", c.Output.Indent)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
