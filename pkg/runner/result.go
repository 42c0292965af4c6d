package runner

import (
	"errors"

	"github.com/yaklabco/parsekit/pkg/parse"
)

// Outcome is the result of parsing one input.
type Outcome struct {
	// Input is the parsed input.
	Input Input

	// Value is the parsed value when Error is nil.
	Value any

	// Error is a *parse.FinalizeError when the input was rejected.
	Error error
}

// Matched reports whether the input was accepted.
func (o Outcome) Matched() bool {
	return o.Error == nil
}

// Remaining returns the unparsed suffix reported by a rejection, or "".
func (o Outcome) Remaining() string {
	var ferr *parse.FinalizeError
	if errors.As(o.Error, &ferr) {
		return ferr.Remaining
	}
	return ""
}

// Stats captures aggregate information about a run.
type Stats struct {
	// Inputs is the number of inputs submitted.
	Inputs int

	// Matched is the number of inputs accepted.
	Matched int

	// Failed is the number of inputs rejected.
	Failed int
}

// Result is the overall runner result.
type Result struct {
	// Grammar is the name of the grammar used.
	Grammar string

	// Outcomes holds one entry per processed input, in input order.
	Outcomes []Outcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any input was rejected.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.Failed > 0
}

func (r *Result) accumulate(outcome Outcome) {
	r.Outcomes = append(r.Outcomes, outcome)
	if outcome.Matched() {
		r.Stats.Matched++
	} else {
		r.Stats.Failed++
	}
}
