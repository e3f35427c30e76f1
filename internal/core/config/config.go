// Package config handles configuration loading and validation for redline.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/redlinehq/redline/internal/core/review"
)

// Config holds the application configuration.
type Config struct {
	// Theme selects the TUI color palette.
	Theme string `yaml:"theme"`
	// DefaultPolicy resolves review units still pending at apply time:
	// "current" keeps the original text, "incoming" takes the proposed text.
	DefaultPolicy string `yaml:"default_policy"`
	// ProposalGlobs locate the proposal file for a document. Patterns are
	// doublestar globs relative to the document's directory; "{name}"
	// expands to the document's filename without extension.
	ProposalGlobs []string `yaml:"proposal_globs"`
	// MarkdownStyle is the glamour style used for the markdown preview.
	MarkdownStyle string `yaml:"markdown_style"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:         "tokyo-night",
		DefaultPolicy: "current",
		ProposalGlobs: []string{
			"{name}.proposed.md",
			"{name}.proposed.txt",
			"proposals/{name}*.md",
		},
		MarkdownStyle: "dark",
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.DefaultPolicy == "" {
		c.DefaultPolicy = def.DefaultPolicy
	}
	if len(c.ProposalGlobs) == 0 {
		c.ProposalGlobs = def.ProposalGlobs
	}
	if c.MarkdownStyle == "" {
		c.MarkdownStyle = def.MarkdownStyle
	}
}

// Policy returns the default decision for still-pending units at apply time.
// Validation guarantees the configured name parses.
func (c *Config) Policy() review.Decision {
	d, err := review.ParseDecision(c.DefaultPolicy)
	if err != nil {
		return review.DecisionCurrent
	}
	return d
}
