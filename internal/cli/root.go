// Package cli provides the Cobra command structure for parsekit.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/parsekit/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Global flag names shared by subcommands.
const (
	flagDebug  = "debug"
	flagConfig = "config"
	flagColor  = "color"
)

// NewRootCommand creates the root parsekit command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "parsekit",
		Short: "Run parser-combinator grammars over text",
		Long: `parsekit runs grammars built from small composable parsers over text.

Each grammar is assembled from primitive parsers (characters, literals,
digits, whitespace) and combinators (sequence, choice, repetition,
lookahead, transformation). parsekit parses inputs from arguments, files
or stdin, checks examples embedded in Markdown documentation, and reports
what matched and where parsing stopped.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, flagDebug, false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, flagConfig, "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, flagColor, "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newGrammarsCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newDemoCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
