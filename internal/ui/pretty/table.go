package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/parsekit/pkg/runner"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // LOCATION, INPUT, STATUS, RESULT
	statusWidth      = 6
	minLocWidth      = 8
	minInputWidth    = 12
	minResultWidth   = 20
	heavySeparator   = "="
	defaultTermWidth = 100
)

// TableRow represents a single row in the outcome table.
type TableRow struct {
	Location string
	Input    string
	Matched  bool
	Result   string
}

// OutcomeToTableRow converts a runner outcome to a table row.
func OutcomeToTableRow(outcome runner.Outcome) TableRow {
	row := TableRow{
		Location: outcome.Input.Location(),
		Input:    strconv.Quote(outcome.Input.Text),
		Matched:  outcome.Matched(),
	}
	if row.Matched {
		row.Result = FormatValue(outcome.Value)
	} else {
		row.Result = outcome.Error.Error()
	}
	return row
}

// TableFormatter formats outcomes as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

type columnWidths struct {
	loc    int
	input  int
	result int
}

// FormatTable formats runner outcomes as a table followed by a separator.
func (t *TableFormatter) FormatTable(outcomes []runner.Outcome) string {
	if len(outcomes) == 0 {
		return ""
	}

	rows := make([]TableRow, 0, len(outcomes))
	for _, outcome := range outcomes {
		rows = append(rows, OutcomeToTableRow(outcome))
	}

	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder
	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")
	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	return builder.String()
}

// calculateColumnWidths sizes columns to content, shrinking the result and
// then the input column to fit the terminal.
func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	widths := columnWidths{
		loc:    minLocWidth,
		input:  minInputWidth,
		result: minResultWidth,
	}

	for _, row := range rows {
		widths.loc = max(widths.loc, utf8.RuneCountInString(row.Location))
		widths.input = max(widths.input, utf8.RuneCountInString(row.Input))
		widths.result = max(widths.result, utf8.RuneCountInString(row.Result))
	}

	total := totalWidth(widths)
	if total > t.termWidth {
		excess := total - t.termWidth
		widths.result = max(minResultWidth, widths.result-excess)

		total = totalWidth(widths)
		if total > t.termWidth {
			excess = total - t.termWidth
			widths.input = max(minInputWidth, widths.input-excess)
		}
	}

	return widths
}

func totalWidth(widths columnWidths) int {
	return widths.loc + widths.input + statusWidth + widths.result + tablePadding*tableColumnCount
}

func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %s  %s  %s  %s",
		pad("LOCATION", widths.loc),
		pad("INPUT", widths.input),
		pad("STATUS", statusWidth),
		pad("RESULT", widths.result),
	)
	return t.styles.TableHeader.Render(header)
}

func (t *TableFormatter) formatSeparator(widths columnWidths) string {
	return t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, totalWidth(widths)))
}

func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	status := StatusOK
	style := t.styles.TableMatchRow
	if !row.Matched {
		status = StatusFail
		style = t.styles.TableFailRow
	}

	content := fmt.Sprintf(" %s  %s  %s  %s",
		pad(truncateString(row.Location, widths.loc), widths.loc),
		pad(truncateString(row.Input, widths.input), widths.input),
		pad(status, statusWidth),
		truncateString(row.Result, widths.result),
	)
	return style.Render(content)
}

// pad right-pads str with spaces to width runes.
func pad(str string, width int) string {
	n := utf8.RuneCountInString(str)
	if n >= width {
		return str
	}
	return str + strings.Repeat(" ", width-n)
}

// truncateString truncates a string to maxLen runes, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	runes := []rune(str)
	if len(runes) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
