package pretty

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/parsekit/pkg/parse"
	"github.com/yaklabco/parsekit/pkg/runner"
)

// Status labels for outcomes.
const (
	StatusOK   = "ok"
	StatusFail = "fail"
)

// FormatValue renders a parsed value for display. Strings are quoted so
// that empty and whitespace values stay visible.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "<none>"
	case string:
		return strconv.Quote(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatStatus returns the styled status label for an outcome.
func (s *Styles) FormatStatus(outcome runner.Outcome) string {
	if outcome.Matched() {
		return s.Success.Render(StatusOK)
	}
	return s.Failure.Render(StatusFail)
}

// FormatOutcome formats one outcome for terminal output. Rejected inputs
// that stopped part way get a caret under the first unparsed character
// when showContext is set.
func (s *Styles) FormatOutcome(outcome runner.Outcome, showContext bool) string {
	var builder strings.Builder

	quoted := strconv.Quote(outcome.Input.Text)

	if outcome.Matched() {
		builder.WriteString(fmt.Sprintf("  %s  %s  %s => %s\n",
			s.Location.Render(outcome.Input.Location()),
			s.FormatStatus(outcome),
			s.Input.Render(quoted),
			s.Value.Render(FormatValue(outcome.Value)),
		))
		return builder.String()
	}

	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		s.Location.Render(outcome.Input.Location()),
		s.FormatStatus(outcome),
		s.Input.Render(quoted),
		s.Error.Render(outcome.Error.Error()),
	))

	var ferr *parse.FinalizeError
	if showContext && errors.As(outcome.Error, &ferr) && errors.Is(ferr, parse.ErrUnparsedInput) {
		builder.WriteString(s.FormatRemainingContext(ferr.Input, ferr.Remaining))
	}

	return builder.String()
}

// FormatRemainingContext prints input with a caret marking where remaining
// begins. Positions are counted in quoted form so escapes line up.
func (s *Styles) FormatRemainingContext(input, remaining string) string {
	const indent = "        "

	consumed := input[:len(input)-len(remaining)]
	// strconv.Quote adds a leading quote, and the consumed prefix is quoted
	// without its closing quote.
	column := utf8.RuneCountInString(strconv.Quote(consumed)) - 1

	var builder strings.Builder
	builder.WriteString(indent + s.Dim.Render(strconv.Quote(input)) + "\n")
	builder.WriteString(indent + strings.Repeat(" ", column) + s.Caret.Render("^") + "\n")
	return builder.String()
}
