package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/parsekit/internal/configloader"
	"github.com/yaklabco/parsekit/internal/logging"
	"github.com/yaklabco/parsekit/pkg/config"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new parsekit configuration file",
		Long: `Create a new .parsekit.yml configuration file in the current directory
with the default settings.

Examples:
  parsekit init                      Create .parsekit.yml
  parsekit init --format toml        Create .parsekit.toml instead
  parsekit init --output custom.yml  Write to a custom file path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Output format: yaml or toml")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .parsekit.yml or .parsekit.toml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()
	logger.SetOutput(cmd.OutOrStdout())

	if flags.format != "yaml" && flags.format != "toml" {
		return fmt.Errorf("invalid format %q: must be yaml or toml", flags.format)
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".parsekit.yml"
		if flags.format == "toml" {
			outputPath = ".parsekit.toml"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	cfg := config.NewConfig()
	err = configloader.WriteConfig(cmd.Context(), cfg, absPath, flags.force)
	if errors.Is(err, configloader.ErrConfigExists) {
		return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
	}
	if err != nil {
		return err
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'parsekit grammars' to see all available grammars")

	return nil
}
