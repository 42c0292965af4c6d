package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/parsekit/internal/ui/pretty"
	"github.com/yaklabco/parsekit/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
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

	for _, outcome := range result.Outcomes {
		if r.opts.FailuresOnly && outcome.Matched() {
			continue
		}
		fmt.Fprint(r.bw, r.styles.FormatOutcome(outcome, r.opts.ShowContext))
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw)
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Grammar, result.Stats))
	}

	return failedCount(result), nil
}
