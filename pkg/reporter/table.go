package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/yaklabco/parsekit/internal/ui/pretty"
	"github.com/yaklabco/parsekit/pkg/runner"
)

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// TableReporter formats results as a styled table with color-coded rows.
type TableReporter struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
	bw        *bufio.Writer
}

// NewTableReporter creates a new table reporter.
func NewTableReporter(opts Options) *TableReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	styles := pretty.NewStyles(colorEnabled)

	return &TableReporter{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles, getTerminalWidth(opts.Writer)),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Outcomes) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine("", runner.Stats{}))
		}
		return 0, nil
	}

	outcomes := result.Outcomes
	if r.opts.FailuresOnly {
		outcomes = make([]runner.Outcome, 0, result.Stats.Failed)
		for _, outcome := range result.Outcomes {
			if !outcome.Matched() {
				outcomes = append(outcomes, outcome)
			}
		}
	}

	fmt.Fprint(r.bw, r.formatter.FormatTable(outcomes))

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummary(result.Grammar, result.Stats))
	}

	return failedCount(result), nil
}

// getTerminalWidth attempts to get the terminal width from the writer.
func getTerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
