package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/parsekit/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordInput           = "input"
	wordInputs          = "inputs"
)

func pluralInputs(n int) string {
	if n == 1 {
		return wordInput
	}
	return wordInputs
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "2 of 5 inputs failed (3 matched) with grammar int".
func (s *Styles) FormatSummaryOneLine(grammar string, stats runner.Stats) string {
	if stats.Inputs == 0 {
		return s.Dim.Render("No inputs to parse") + "\n"
	}

	suffix := ""
	if grammar != "" {
		suffix = s.Dim.Render(" with grammar " + grammar)
	}

	if stats.Failed == 0 {
		return s.Success.Render(fmt.Sprintf("All %d %s matched", stats.Inputs, pluralInputs(stats.Inputs))) +
			suffix + "\n"
	}

	return s.Failure.Render(fmt.Sprintf("%d of %d %s failed", stats.Failed, stats.Inputs, pluralInputs(stats.Inputs))) +
		s.Dim.Render(fmt.Sprintf(" (%d matched)", stats.Matched)) + suffix + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(grammar string, stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Grammar:  " + s.GrammarName.Render(grammar) + "\n")
	builder.WriteString("  Inputs:   " + s.SummaryValue.Render(strconv.Itoa(stats.Inputs)) + "\n")
	builder.WriteString("  Matched:  " + s.Success.Render(strconv.Itoa(stats.Matched)) + "\n")
	if stats.Failed > 0 {
		builder.WriteString("  Failed:   " + s.Failure.Render(strconv.Itoa(stats.Failed)) + "\n")
	}

	return builder.String()
}
