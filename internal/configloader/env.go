package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/parsekit/pkg/config"
)

// envVarPrefix is the prefix for all parsekit environment variables.
const envVarPrefix = "PARSEKIT_"

type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
)

type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"GRAMMAR":         {field: "grammar", typ: envTypeString, description: "Grammar name used by parse"},
	"ALLOW_REMAINING": {field: "allow_remaining", typ: envTypeBool, description: "Accept unparsed trailing input: true or false"},
	"WHITESPACE":      {field: "whitespace", typ: envTypeString, description: "Trim whitespace: none, before, after or around"},
	"FORMAT":          {field: "format", typ: envTypeString, description: "Output format: text, table, json or yaml"},
	"COLOR":           {field: "color", typ: envTypeString, description: "Color mode: auto, always or never"},
	"JOBS":            {field: "jobs", typ: envTypeInt, description: "Number of parallel workers (0 = auto)"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with PARSEKIT_ (e.g., PARSEKIT_GRAMMAR).
func LoadFromEnv(cfg *config.Config) error {
	return loadFromLookup(cfg, os.LookupEnv)
}

func loadFromLookup(cfg *config.Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value, ok := lookup(envVar)
		if !ok || value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "grammar":
		cfg.Grammar = value
	case "whitespace":
		cfg.Whitespace = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "color":
		cfg.Color = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "allow_remaining":
		cfg.AllowRemaining = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.description
	}
	return vars
}
