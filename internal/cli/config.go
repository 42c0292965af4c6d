package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/parsekit/internal/configloader"
	"github.com/yaklabco/parsekit/internal/logging"
	"github.com/yaklabco/parsekit/pkg/config"
)

// ErrConfig wraps configuration loading failures.
var ErrConfig = errors.New("failed to load configuration")

// loadConfig resolves the configuration for cmd, with cliCfg holding only
// the values set by flags. The global --color flag is applied when given.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	if cmd.Flags().Changed(flagColor) {
		color, err := cmd.Flags().GetString(flagColor)
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		cliCfg.Color = color
	}

	result, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	if len(result.LoadedFrom) > 0 {
		logging.FromContext(cmd.Context()).Debug("loaded configuration", logging.FieldPaths, result.LoadedFrom)
	}

	return result.Config, nil
}
