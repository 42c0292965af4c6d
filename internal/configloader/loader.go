// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support and validation.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/parsekit/internal/logging"
	"github.com/yaklabco/parsekit/pkg/config"
	"github.com/yaklabco/parsekit/pkg/grammar"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// ErrConfigExists is returned by WriteConfig when the target already exists
// and overwriting was not requested.
var ErrConfigExists = errors.New("config file already exists")

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// Registry is used to check the configured grammar name.
	// Defaults to grammar.DefaultRegistry.
	Registry *grammar.Registry

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (PARSEKIT_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.parsekit.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/parsekit/config.yaml)
//  6. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.NewConfig()

	logger.Debug("discovering config", logging.FieldWorkingDir, workDir)
	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}

	layers := []struct {
		name string
		path string
		skip bool
	}{
		{name: "user", path: paths.User, skip: opts.IgnoreUserConfig},
		{name: "project", path: paths.Project, skip: opts.IgnoreProjectConfig},
		{name: "explicit", path: paths.Explicit},
	}

	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}
		fileCfg, err := LoadFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
		logger.Debug("loaded config", logging.FieldSource, layer.name, logging.FieldPath, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	registry := opts.Registry
	if registry == nil {
		registry = grammar.DefaultRegistry
	}

	if err := Validate(cfg, registry); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) && len(result.LoadedFrom) > 0 {
			verr.FilePath = result.LoadedFrom[len(result.LoadedFrom)-1]
		}
		return nil, err
	}

	logger.Debug("resolved config",
		logging.FieldGrammar, cfg.Grammar,
		logging.FieldFormat, cfg.Format,
		logging.FieldWhitespace, cfg.Whitespace,
		logging.FieldJobs, cfg.Jobs,
	)

	result.Config = cfg
	return result, nil
}

// LoadFile reads a single configuration file. The format follows the file
// extension: .toml is TOML, anything else is YAML.
func LoadFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.Decode(path, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// WriteConfig writes cfg with a header comment, as TOML when path ends in
// .toml and as YAML otherwise. It refuses to replace an existing file unless
// force is set.
func WriteConfig(ctx context.Context, cfg *config.Config, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}

	content, err := encodeConfig(cfg, path)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := writeAtomic(ctx, path, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

func encodeConfig(cfg *config.Config, path string) ([]byte, error) {
	const header = "# parsekit configuration"

	if !strings.EqualFold(filepath.Ext(path), ".toml") {
		return cfg.ToYAMLWithHeader(header)
	}

	data, err := cfg.ToTOML()
	if err != nil {
		return nil, err
	}
	return append([]byte(header+"\n\n"), data...), nil
}
