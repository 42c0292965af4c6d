package mdexamples

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/parsekit/internal/logging"
	"github.com/yaklabco/parsekit/pkg/grammar"
	"github.com/yaklabco/parsekit/pkg/runner"
)

// ErrNoGrammar is reported for a block that names no grammar when no
// default grammar is configured.
var ErrNoGrammar = errors.New("example block names no grammar")

// Options controls Check.
type Options struct {
	// Paths are files or directories to scan. Defaults to ".".
	Paths []string

	// Include and Exclude are doublestar patterns applied inside directories.
	Include []string
	Exclude []string

	// Registry resolves grammar names. Defaults to grammar.DefaultRegistry.
	Registry *grammar.Registry

	// DefaultGrammar is used for blocks whose info string names no grammar.
	DefaultGrammar string

	// Jobs bounds the number of concurrent workers per grammar.
	Jobs int
}

// ExampleResult is the verdict on one example.
type ExampleResult struct {
	Example Example

	// Outcome is the parse outcome. Zero when Err is set.
	Outcome runner.Outcome

	// Err is set when the example could not be run, e.g. an unknown grammar.
	Err error
}

// Passed reports whether the grammar behaved as the example expects.
func (r ExampleResult) Passed() bool {
	if r.Err != nil {
		return false
	}
	return r.Outcome.Matched() != r.Example.ExpectReject
}

// Message describes why an example did not pass. Empty for passing examples.
func (r ExampleResult) Message() string {
	switch {
	case r.Err != nil:
		return r.Err.Error()
	case r.Passed():
		return ""
	case r.Example.ExpectReject:
		return fmt.Sprintf("expected rejection, matched %v", r.Outcome.Value)
	default:
		return "expected match: " + r.Outcome.Error.Error()
	}
}

// Report aggregates a Check run.
type Report struct {
	// Files lists the documents scanned.
	Files []string

	// Results holds one entry per example, in file and line order.
	Results []ExampleResult

	Passed int
	Failed int
}

// HasFailures reports whether any example failed.
func (r *Report) HasFailures() bool {
	return r != nil && r.Failed > 0
}

// Check discovers Markdown documents, extracts their examples and runs each
// through its grammar.
func Check(ctx context.Context, opts Options) (*Report, error) {
	logger := logging.FromContext(ctx)

	registry := opts.Registry
	if registry == nil {
		registry = grammar.DefaultRegistry
	}

	files, err := Discover(ctx, opts.Paths, opts.Include, opts.Exclude)
	if err != nil {
		return nil, err
	}

	report := &Report{Files: files}

	var examples []Example
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		found := Extract(path, content)
		logger.Debug("extracted examples", logging.FieldPath, path, logging.FieldExamples, len(found))
		examples = append(examples, found...)
	}

	report.Results = make([]ExampleResult, len(examples))

	// Group example indexes by grammar so each grammar runs once.
	groups := make(map[string][]int)
	var order []string
	for idx, example := range examples {
		report.Results[idx].Example = example
		name := example.Grammar
		if name == "" {
			name = opts.DefaultGrammar
		}
		if _, ok := groups[name]; !ok {
			order = append(order, name)
		}
		groups[name] = append(groups[name], idx)
	}

	for _, name := range order {
		indexes := groups[name]
		groupCtx := logging.WithFields(ctx, logging.FieldGrammar, name)
		if err := runGroup(groupCtx, registry, name, indexes, report.Results, opts.Jobs); err != nil {
			return nil, err
		}
	}

	for _, result := range report.Results {
		if result.Passed() {
			report.Passed++
		} else {
			report.Failed++
		}
	}

	logger.Debug("checked examples",
		logging.FieldFiles, len(files),
		logging.FieldExamples, len(examples),
		logging.FieldFailed, report.Failed,
	)

	return report, nil
}

func runGroup(
	ctx context.Context,
	registry *grammar.Registry,
	name string,
	indexes []int,
	results []ExampleResult,
	jobs int,
) error {
	if name == "" {
		for _, idx := range indexes {
			results[idx].Err = ErrNoGrammar
		}
		return nil
	}

	g, err := registry.Lookup(name)
	if err != nil {
		for _, idx := range indexes {
			results[idx].Err = err
		}
		return nil
	}

	inputs := make([]runner.Input, len(indexes))
	for pos, idx := range indexes {
		example := results[idx].Example
		inputs[pos] = runner.Input{Source: example.File, Line: example.Line, Text: example.Input}
	}

	run, err := runner.Run(ctx, runner.Options{Inputs: inputs, Grammar: g, Jobs: jobs})
	if err != nil {
		return fmt.Errorf("grammar %s: %w", name, err)
	}

	for pos, idx := range indexes {
		results[idx].Outcome = run.Outcomes[pos]
	}
	return nil
}
