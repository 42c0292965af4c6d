package cli

import (
	"errors"

	"github.com/yaklabco/parsekit/pkg/mdexamples"
	"github.com/yaklabco/parsekit/pkg/runner"
)

// Exit codes for parsekit.
const (
	// ExitSuccess indicates every input matched.
	ExitSuccess = 0

	// ExitFailures indicates at least one input or example failed.
	ExitFailures = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65
)

var (
	// ErrParseFailures is returned by parse when at least one input was rejected.
	ErrParseFailures = errors.New("some inputs failed to parse")

	// ErrExamplesFailed is returned by check when at least one example failed.
	ErrExamplesFailed = errors.New("some documentation examples failed")

	// ErrNoInputs is returned by parse when there is nothing to parse.
	ErrNoInputs = errors.New("no inputs given; pass arguments, --file or --stdin")
)

// ExitCodeFromResult determines the exit code for a parse run.
func ExitCodeFromResult(result *runner.Result) int {
	if result.HasFailures() {
		return ExitFailures
	}
	return ExitSuccess
}

// ExitCodeFromReport determines the exit code for an example check.
func ExitCodeFromReport(report *mdexamples.Report) int {
	if report.HasFailures() {
		return ExitFailures
	}
	return ExitSuccess
}

// IsSilentError reports whether err only signals a non-zero exit code and
// needs no log line.
func IsSilentError(err error) bool {
	return errors.Is(err, ErrParseFailures) || errors.Is(err, ErrExamplesFailed)
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrNoInputs):
		return ExitInvalidUsage
	default:
		return ExitFailures
	}
}
