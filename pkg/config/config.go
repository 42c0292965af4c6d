// Package config defines core configuration types for parsekit.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/yaklabco/parsekit/pkg/parse"
)

// OutputFormat specifies the output format for parse results.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// WhitespaceNone disables whitespace trimming around the grammar.
const WhitespaceNone = "none"

// DefaultGrammar is the grammar used when none is configured.
const DefaultGrammar = "int"

// DocsConfig controls which Markdown files `parsekit check` scans.
type DocsConfig struct {
	// Include holds doublestar patterns relative to the working directory.
	Include []string `yaml:"include,omitempty" toml:"include,omitempty"`

	// Exclude holds doublestar patterns for files to skip.
	Exclude []string `yaml:"exclude,omitempty" toml:"exclude,omitempty"`
}

// Config is the root configuration structure for parsekit.
type Config struct {
	// Grammar is the registered grammar name used by `parsekit parse`.
	Grammar string `yaml:"grammar" toml:"grammar"`

	// AllowRemaining accepts inputs that match with unparsed input left over.
	AllowRemaining bool `yaml:"allow_remaining" toml:"allow_remaining"`

	// Whitespace trims whitespace around each input: "none", "before",
	// "after" or "around". Empty means none.
	Whitespace string `yaml:"whitespace,omitempty" toml:"whitespace,omitempty"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"format" toml:"format"`

	// Color controls colorized output: auto, always or never.
	Color string `yaml:"color" toml:"color"`

	// Jobs is the number of parallel workers. 0 means runtime.NumCPU().
	Jobs int `yaml:"jobs,omitempty" toml:"jobs,omitempty"`

	// Docs configures Markdown example checking.
	Docs DocsConfig `yaml:"docs,omitempty" toml:"docs,omitempty"`
}

// DefaultDocsInclude returns the default Markdown patterns.
func DefaultDocsInclude() []string {
	return []string{"**/*.md"}
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Grammar:    DefaultGrammar,
		Whitespace: WhitespaceNone,
		Format:     FormatText,
		Color:      ColorAuto,
		Jobs:       0,
		Docs: DocsConfig{
			Include: DefaultDocsInclude(),
		},
	}
}

// WhitespaceMode returns the trimming mode and whether trimming is enabled.
func (c *Config) WhitespaceMode() (parse.WhitespaceMode, bool, error) {
	if c == nil || c.Whitespace == "" || c.Whitespace == WhitespaceNone {
		return parse.Before, false, nil
	}
	mode, err := parse.ParseWhitespaceMode(c.Whitespace)
	if err != nil {
		return parse.Before, false, err
	}
	return mode, true, nil
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}

	var errs []error

	if c.Format != "" && !c.Format.IsValid() {
		errs = append(errs, fmt.Errorf("format: unsupported value %q (expected text, table, json or yaml)", c.Format))
	}
	if c.Color != "" && !slices.Contains([]string{ColorAuto, ColorAlways, ColorNever}, c.Color) {
		errs = append(errs, fmt.Errorf("color: unsupported value %q (expected auto, always or never)", c.Color))
	}
	if _, _, err := c.WhitespaceMode(); err != nil {
		errs = append(errs, fmt.Errorf("whitespace: %w", err))
	}
	if c.Jobs < 0 {
		errs = append(errs, fmt.Errorf("jobs: must not be negative, got %d", c.Jobs))
	}

	return errors.Join(errs...)
}
