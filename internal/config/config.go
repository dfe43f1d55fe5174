// Package config holds the editor and batch-conversion settings, with
// hardcoded defaults and an optional YAML config file overlay.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EditorSettings holds the caption engine parameters.
type EditorSettings struct {
	// LineLengthLimit is the characters-per-line guideline. Lines beyond
	// it are flagged for display, never rejected.
	LineLengthLimit int `yaml:"line_length_limit"`
	// MaxHistory bounds the undo stack.
	MaxHistory int `yaml:"max_history"`
	// DefaultCaptionSpan is the span in seconds given to a caption
	// inserted after the last one.
	DefaultCaptionSpan float64 `yaml:"default_caption_span"`
	// PlaceholderText is the text of a freshly inserted caption.
	PlaceholderText string `yaml:"placeholder_text"`
}

// Config holds the full application configuration.
type Config struct {
	EditorSettings `yaml:"editor"`

	MaxConcurrentFiles int `yaml:"max_concurrent_files"`
	FilesPerMinute     int `yaml:"files_per_minute"`
}

// Default returns a Config with hardcoded defaults.
func Default() *Config {
	return &Config{
		EditorSettings: EditorSettings{
			LineLengthLimit:    42,
			MaxHistory:         50,
			DefaultCaptionSpan: 3.0,
			PlaceholderText:    "New caption text",
		},
		MaxConcurrentFiles: 4,
		FilesPerMinute:     0, // unlimited
	}
}

// Load reads a YAML config file over the defaults. Unset fields keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
