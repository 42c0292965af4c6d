package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/parsekit/internal/logging"
)

// ErrNoGrammar is returned by Run when Options.Grammar is nil.
var ErrNoGrammar = errors.New("no grammar configured")

type job struct {
	index int
	input Input
}

type done struct {
	index   int
	outcome Outcome
}

// Run parses every input with the configured grammar using a worker pool.
// Outcomes are returned in input order regardless of completion order.
//
// On cancellation the inputs processed so far are returned together with an
// error wrapping the context error.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Grammar == nil {
		return nil, ErrNoGrammar
	}

	logger := logging.FromContext(ctx)

	result := &Result{
		Grammar:  opts.Grammar.Name(),
		Outcomes: make([]Outcome, 0, len(opts.Inputs)),
	}
	result.Stats.Inputs = len(opts.Inputs)

	if len(opts.Inputs) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	// Don't use more workers than inputs.
	if jobs > len(opts.Inputs) {
		jobs = len(opts.Inputs)
	}

	logger.Debug("starting run",
		logging.FieldGrammar, result.Grammar,
		logging.FieldInputs, len(opts.Inputs),
		logging.FieldJobs, jobs,
	)

	finalize := opts.finalizer()

	workCh := make(chan job)
	outCh := make(chan done)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range workCh {
				value, err := finalize(item.input.Text)
				select {
				case <-ctx.Done():
					return
				case outCh <- done{index: item.index, outcome: Outcome{Input: item.input, Value: value, Error: err}}:
				}
			}
		}()
	}

	go func() {
		defer close(workCh)
		for idx, input := range opts.Inputs {
			select {
			case <-ctx.Done():
				return
			case workCh <- job{index: idx, input: input}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make([]*Outcome, len(opts.Inputs))
	for d := range outCh {
		outcome := d.outcome
		outcomes[d.index] = &outcome
	}

	debug := logger.GetLevel() <= log.DebugLevel
	for _, outcome := range outcomes {
		if outcome == nil {
			continue
		}
		result.accumulate(*outcome)
		if debug {
			logOutcome(logger, *outcome)
		}
	}

	logger.Debug("run complete",
		logging.FieldMatched, result.Stats.Matched,
		logging.FieldFailed, result.Stats.Failed,
	)

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

func logOutcome(logger *log.Logger, outcome Outcome) {
	keyvals := []any{
		logging.FieldSource, outcome.Input.Source,
		logging.FieldLine, outcome.Input.Line,
		logging.FieldInput, outcome.Input.Text,
		logging.FieldMatched, outcome.Matched(),
	}
	if outcome.Matched() {
		keyvals = append(keyvals, logging.FieldValue, outcome.Value)
	} else {
		keyvals = append(keyvals, logging.FieldRemaining, outcome.Remaining())
	}
	logger.Debug("parsed input", keyvals...)
}
