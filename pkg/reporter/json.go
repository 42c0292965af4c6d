package reporter

import (
	"bufio"
	"context"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yaklabco/parsekit/pkg/parse"
	"github.com/yaklabco/parsekit/pkg/runner"
)

// outputVersion is the schema version of structured output.
const outputVersion = "1.0.0"

// Output is the top-level structure of JSON and YAML reports.
type Output struct {
	Version string          `json:"version" yaml:"version"`
	Grammar string          `json:"grammar" yaml:"grammar"`
	Results []OutcomeOutput `json:"results" yaml:"results"`
	Summary SummaryOutput   `json:"summary" yaml:"summary"`
}

// OutcomeOutput represents a single parsed input.
type OutcomeOutput struct {
	Source    string `json:"source" yaml:"source"`
	Line      int    `json:"line" yaml:"line"`
	Input     string `json:"input" yaml:"input"`
	Matched   bool   `json:"matched" yaml:"matched"`
	Value     any    `json:"value,omitempty" yaml:"value,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
	Remaining string `json:"remaining,omitempty" yaml:"remaining,omitempty"`
	Offset    *int   `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// SummaryOutput contains aggregate statistics.
type SummaryOutput struct {
	Inputs  int `json:"inputs" yaml:"inputs"`
	Matched int `json:"matched" yaml:"matched"`
	Failed  int `json:"failed" yaml:"failed"`
}

// BuildOutput converts a runner result into its structured form.
func BuildOutput(result *runner.Result) *Output {
	output := &Output{
		Version: outputVersion,
		Results: make([]OutcomeOutput, 0),
	}

	if result == nil {
		return output
	}

	output.Grammar = result.Grammar
	output.Summary = SummaryOutput{
		Inputs:  result.Stats.Inputs,
		Matched: result.Stats.Matched,
		Failed:  result.Stats.Failed,
	}

	if len(result.Outcomes) > 0 {
		output.Results = make([]OutcomeOutput, 0, len(result.Outcomes))
	}

	for _, outcome := range result.Outcomes {
		entry := OutcomeOutput{
			Source:  outcome.Input.Source,
			Line:    outcome.Input.Line,
			Input:   outcome.Input.Text,
			Matched: outcome.Matched(),
		}

		if entry.Matched {
			entry.Value = normalizeValue(outcome.Value)
		} else {
			entry.Error = outcome.Error.Error()
			var ferr *parse.FinalizeError
			if errors.As(outcome.Error, &ferr) && errors.Is(ferr, parse.ErrUnparsedInput) {
				offset := ferr.Offset()
				entry.Remaining = ferr.Remaining
				entry.Offset = &offset
			}
		}

		output.Results = append(output.Results, entry)
	}

	return output
}

// normalizeValue converts values that encode themselves as text, such as
// decimal numbers, into plain strings so every encoder renders them alike.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case nil, string, bool, int:
		return v
	case []any:
		out := make([]any, len(v))
		for idx, item := range v {
			out[idx] = normalizeValue(item)
		}
		return out
	case encoding.TextMarshaler:
		text, err := v.MarshalText()
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(text)
	default:
		return v
	}
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(BuildOutput(result)); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return failedCount(result), nil
}
