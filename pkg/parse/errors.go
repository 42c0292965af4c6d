package parse

import (
	"errors"
	"fmt"
)

var (
	// ErrNoParsers is returned when a combinator is built from an empty
	// parser list.
	ErrNoParsers = errors.New("at least one parser is required")

	// ErrNoMatch is the terminal error for a parser that did not match.
	ErrNoMatch = errors.New("input did not match")

	// ErrUnparsedInput is the terminal error for a match that left input
	// behind when remaining input is not allowed.
	ErrUnparsedInput = errors.New("unparsed input remaining")
)

// maxQuoted bounds how much input a FinalizeError quotes in its message.
const maxQuoted = 32

// FinalizeError is returned by a Finalizer.
type FinalizeError struct {
	// Input is the full input given to the finalizer.
	Input string

	// Remaining is the unconsumed input. Equal to Input when nothing matched.
	Remaining string

	// Err is ErrNoMatch or ErrUnparsedInput.
	Err error
}

// Error implements error.
func (e *FinalizeError) Error() string {
	if errors.Is(e.Err, ErrUnparsedInput) {
		return fmt.Sprintf("%v at offset %d: %q", e.Err, e.Offset(), truncate(e.Remaining))
	}
	return fmt.Sprintf("%v: %q", e.Err, truncate(e.Input))
}

// Unwrap returns the underlying sentinel.
func (e *FinalizeError) Unwrap() error {
	return e.Err
}

// Offset returns the byte offset in Input where parsing stopped.
func (e *FinalizeError) Offset() int {
	return len(e.Input) - len(e.Remaining)
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxQuoted {
		return s
	}
	return string(runes[:maxQuoted]) + "..."
}
