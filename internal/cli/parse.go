package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/parsekit/internal/logging"
	"github.com/yaklabco/parsekit/pkg/config"
	"github.com/yaklabco/parsekit/pkg/grammar"
	"github.com/yaklabco/parsekit/pkg/reporter"
	"github.com/yaklabco/parsekit/pkg/runner"
)

const flagAllowRemaining = "allow-remaining"

type parseFlags struct {
	grammar        string
	allowRemaining bool
	trim           string
	format         string
	files          []string
	stdin          bool
	jobs           int
	failuresOnly   bool
	noContext      bool
	compact        bool
}

func newParseCommand() *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse [input...]",
		Short: "Parse inputs with a grammar",
		Long:  parseLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.grammar, "grammar", "g", "", "grammar name or alias (default from config, then \"int\")")
	cmd.Flags().BoolVar(&flags.allowRemaining, flagAllowRemaining, false, "accept inputs with unparsed trailing text")
	cmd.Flags().StringVar(&flags.trim, "trim", "", "ignore whitespace around the grammar: none, before, after, around")
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, table, json, yaml")
	cmd.Flags().StringSliceVarP(&flags.files, "file", "f", nil, "read one input per line from file")
	cmd.Flags().BoolVar(&flags.stdin, "stdin", false, "read one input per line from stdin")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.failuresOnly, "failures-only", false, "only show rejected inputs")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide the marker showing where parsing stopped")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")

	return cmd
}

const parseLongDescription = `Parse each input with a grammar and report the parsed value, or why
the input was rejected.

An input is accepted only when the grammar consumes all of it, unless
--allow-remaining is given. Inputs come from arguments, from files (one
input per non-empty line) or from stdin. When no inputs are given and stdin
is not a terminal, stdin is read.

Examples:
  parsekit parse 42 -7 12abc               # Parse integers
  parsekit parse -g int-pair " 00034 230 " # Two whitespace separated integers
  parsekit parse -g decimal --trim around -f prices.txt
  printf '1\n2\n' | parsekit parse --format json`

func runParse(cmd *cobra.Command, args []string, flags *parseFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	cliCfg := &config.Config{
		Grammar:        flags.grammar,
		AllowRemaining: flags.allowRemaining,
		Whitespace:     flags.trim,
		Format:         config.OutputFormat(flags.format),
		Jobs:           flags.jobs,
	}

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}
	// The merge cannot tell an explicit false from unset.
	if cmd.Flags().Changed(flagAllowRemaining) {
		cfg.AllowRemaining = flags.allowRemaining
	}

	g, err := grammar.DefaultRegistry.Lookup(cfg.Grammar)
	if err != nil {
		return err
	}
	logger.Debug("resolved grammar",
		logging.FieldName, g.Name(),
		logging.FieldAliases, g.Aliases(),
		logging.FieldDescription, g.Description(),
		logging.FieldExample, g.Example(),
	)

	mode, trim, err := cfg.WhitespaceMode()
	if err != nil {
		return fmt.Errorf("whitespace: %w", err)
	}

	inputs, err := collectInputs(cmd, args, flags)
	if err != nil {
		return err
	}

	logger.Debug("parsing",
		logging.FieldGrammar, g.Name(),
		logging.FieldInputs, len(inputs),
		logging.FieldAllowRemaining, cfg.AllowRemaining,
		logging.FieldWhitespace, cfg.Whitespace,
	)

	result, err := runner.Run(ctx, runner.Options{
		Inputs:         inputs,
		Grammar:        g,
		AllowRemaining: cfg.AllowRemaining,
		Trim:           trim,
		Whitespace:     mode,
		Jobs:           cfg.Jobs,
	})
	if err != nil {
		return fmt.Errorf("parse run failed: %w", err)
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:       cmd.OutOrStdout(),
		Format:       format,
		Color:        cfg.Color,
		ShowContext:  !flags.noContext,
		ShowSummary:  true,
		FailuresOnly: flags.failuresOnly,
		Compact:      flags.compact,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrParseFailures
	}
	return nil
}

// collectInputs gathers inputs from arguments, then files, then stdin.
func collectInputs(cmd *cobra.Command, args []string, flags *parseFlags) ([]runner.Input, error) {
	ctx := cmd.Context()
	inputs := runner.FromArgs(args)

	fileInputs, err := runner.ReadFiles(ctx, flags.files)
	if err != nil {
		return nil, err
	}
	inputs = append(inputs, fileInputs...)

	stdin := cmd.InOrStdin()
	readStdin := flags.stdin || (len(args) == 0 && len(flags.files) == 0 && !isTerminal(stdin))
	if readStdin {
		stdinInputs, err := runner.ReadLines(ctx, stdin, runner.SourceStdin)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, stdinInputs...)
	}

	if len(args) == 0 && len(flags.files) == 0 && !readStdin {
		return nil, ErrNoInputs
	}
	return inputs, nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
