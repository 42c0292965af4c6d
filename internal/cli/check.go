package cli

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yaklabco/parsekit/internal/ui/pretty"
	"github.com/yaklabco/parsekit/pkg/config"
	"github.com/yaklabco/parsekit/pkg/mdexamples"
)

type checkFlags struct {
	verbose bool
	jobs    int
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check grammar examples in Markdown documents",
		Long: `Check grammar examples embedded in Markdown documents.

An example block is a fenced code block whose info string is
"parsekit <grammar>". Every non-empty line is an input the grammar must
accept in full; a line starting with "!" is an input it must reject.
A block without a grammar name uses the configured grammar.

Directories are searched with the docs.include patterns (default **/*.md)
and docs.exclude patterns from the configuration.

Examples:
  parsekit check                 # Check Markdown under the current directory
  parsekit check README.md docs/ # Check specific files and directories`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "also list passing examples")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) (err error) {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd, &config.Config{Jobs: flags.jobs})
	if err != nil {
		return err
	}

	report, err := mdexamples.Check(ctx, mdexamples.Options{
		Paths:          args,
		Include:        cfg.Docs.Include,
		Exclude:        cfg.Docs.Exclude,
		DefaultGrammar: cfg.Grammar,
		Jobs:           cfg.Jobs,
	})
	if err != nil {
		return fmt.Errorf("check examples: %w", err)
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, cmd.OutOrStdout()))

	bw := bufio.NewWriter(cmd.OutOrStdout())
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	for _, result := range report.Results {
		passed := result.Passed()
		if passed && !flags.verbose {
			continue
		}

		status := styles.Success.Render(pretty.StatusOK)
		detail := ""
		if !passed {
			status = styles.Failure.Render(pretty.StatusFail)
			detail = "  " + styles.Error.Render(result.Message())
		}

		input := strconv.Quote(result.Example.Input)
		if result.Example.ExpectReject {
			input = "!" + input
		}

		fmt.Fprintf(bw, "  %s  %s  %s%s\n",
			styles.Location.Render(fmt.Sprintf("%s:%d", result.Example.File, result.Example.Line)),
			status,
			styles.Input.Render(input),
			detail,
		)
	}

	summary := fmt.Sprintf("%d examples in %d files: %d passed, %d failed",
		len(report.Results), len(report.Files), report.Passed, report.Failed)
	if report.HasFailures() {
		fmt.Fprintln(bw, styles.Failure.Render(summary))
	} else {
		fmt.Fprintln(bw, styles.Success.Render(summary))
	}

	if ExitCodeFromReport(report) != ExitSuccess {
		return ErrExamplesFailed
	}
	return nil
}
