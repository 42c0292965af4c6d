package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FromTOML parses a configuration from TOML bytes.
func FromTOML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}
	return cfg, nil
}

// ToTOML serializes the configuration to TOML format.
func (c *Config) ToTOML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// Decode parses data as TOML or YAML depending on the extension of path.
func Decode(path string, data []byte) (*Config, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FromTOML(data)
	}
	return FromYAML(data)
}
