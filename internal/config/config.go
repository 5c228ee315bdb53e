package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by the dump command.
const (
	OutputYAML = "yaml"
	OutputText = "text"
)

// Config holds the CLI settings.
type Config struct {
	Output           string       `yaml:"output"`
	Indent           int          `yaml:"indent"`
	Verbose          bool         `yaml:"verbose"`
	StandaloneSchema bool         `yaml:"standalone_schema"`
	Limits           LimitsConfig `yaml:"limits"`
}

// LimitsConfig bounds the documents the loader accepts. Zero uses the loader default.
type LimitsConfig struct {
	MaxDepth         int   `yaml:"max_depth,omitempty"`
	MaxDocumentBytes int64 `yaml:"max_document_bytes,omitempty"`
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputYAML,
		Indent: 2,
	}
}

// Load reads a Config from the YAML file at path. If the file does not exist,
// it returns DefaultConfig without error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the --config flag
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the Config to the YAML file at path, creating any necessary
// parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputYAML, OutputText:
	default:
		return fmt.Errorf("unsupported output format %q", c.Output)
	}
	if c.Indent < 1 || c.Indent > 8 {
		return fmt.Errorf("indent must be between 1 and 8, got %d", c.Indent)
	}
	if c.Limits.MaxDepth < 0 {
		return fmt.Errorf("limits.max_depth must be >= 0")
	}
	if c.Limits.MaxDocumentBytes < 0 {
		return fmt.Errorf("limits.max_document_bytes must be >= 0")
	}
	return nil
}
