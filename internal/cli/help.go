package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/parsekit/internal/configloader"
	"github.com/yaklabco/parsekit/internal/ui/pretty"
	"github.com/yaklabco/parsekit/pkg/grammar"
)

// HelpStyles contains Lipgloss styles for command help formatting.
type HelpStyles struct {
	Command     lipgloss.Style
	Heading     lipgloss.Style
	Subcommand  lipgloss.Style
	Flag        lipgloss.Style
	Description lipgloss.Style
	Example     lipgloss.Style
	Alias       lipgloss.Style
	Dim         lipgloss.Style
}

// NewHelpStyles derives help styles from the output styles so help and
// results share one palette.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	styles := pretty.NewStyles(colorEnabled)
	return &HelpStyles{
		Command:     styles.Bold.Inherit(styles.Location),
		Heading:     styles.SummaryTitle,
		Subcommand:  styles.GrammarName,
		Flag:        styles.Value,
		Description: lipgloss.NewStyle(),
		Example:     styles.Dim,
		Alias:       styles.Alias,
		Dim:         styles.Dim,
	}
}

// HelpFormatter provides styled help output for Cobra commands.
type HelpFormatter struct {
	styles *HelpStyles
	help   *template.Template
	usage  *template.Template
}

// NewHelpFormatter creates a new help formatter with the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	h := &HelpFormatter{styles: NewHelpStyles(pretty.IsColorEnabled(colorMode, writer))}

	funcs := template.FuncMap{
		"styleCommand":     h.styles.Command.Render,
		"styleHeading":     h.styles.Heading.Render,
		"styleSubcommand":  h.styles.Subcommand.Render,
		"styleDescription": h.styles.Description.Render,
		"styleExample":     h.styles.Example.Render,
		"styleAlias":       h.styles.Alias.Render,
		"styleDim":         h.styles.Dim.Render,
		"flags":            h.formatFlags,
		"grammars":         h.formatGrammars,
		"envVars":          h.formatEnvVars,
		"join":             strings.Join,
		"rpad":             rpad,
		"trimRight":        trimTrailingWhitespaces,
	}

	h.usage = template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	h.help = template.Must(template.Must(h.usage.Clone()).New("help").Parse(helpTemplate))

	return h
}

const usageTemplate = `{{ styleHeading "Usage:" }}
{{- if .Runnable}}
  {{ styleCommand .UseLine }}{{end}}
{{- if .HasAvailableSubCommands}}
  {{ styleCommand .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ styleHeading "Aliases:" }}
  {{ styleAlias (join .Aliases ", ") }}
{{- end}}

{{- if .HasExample}}

{{ styleHeading "Examples:" }}
{{ styleExample .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ styleHeading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ styleSubcommand (rpad .Name .NamePadding) }} {{ styleDescription .Short }}{{end}}{{end}}
{{- end}}

{{- if eq .Name "parse"}}

{{ styleHeading "Grammars:" }}
{{ grammars }}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ styleHeading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ styleHeading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}

{{- if not .HasParent}}

{{ styleHeading "Environment:" }}
{{ envVars }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ styleCommand (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{ trimRight . }}

{{end}}{{ template "usage" . }}`

// formatFlags renders one line per visible flag: names and value type on the
// left, usage and non-zero default on the right.
func (h *HelpFormatter) formatFlags(set *pflag.FlagSet) string {
	type line struct {
		names, plainNames, usage string
	}

	var lines []line
	width := 0

	set.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}

		varName, usage := pflag.UnquoteUsage(f)

		plain := "    --" + f.Name
		styled := "    " + h.styles.Flag.Render("--"+f.Name)
		if f.Shorthand != "" {
			plain = "-" + f.Shorthand + ", --" + f.Name
			styled = h.styles.Flag.Render("-"+f.Shorthand) + ", " + h.styles.Flag.Render("--"+f.Name)
		}
		if varName != "" {
			plain += " " + varName
			styled += " " + h.styles.Dim.Render(varName)
		}

		if hasDefault(f) {
			usage += h.styles.Dim.Render(fmt.Sprintf(" (default %s)", f.DefValue))
		}

		width = max(width, len(plain))
		lines = append(lines, line{names: styled, plainNames: plain, usage: usage})
	})

	var builder strings.Builder
	for i, l := range lines {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("  ")
		builder.WriteString(l.names)
		builder.WriteString(strings.Repeat(" ", width-len(l.plainNames)+3))
		builder.WriteString(h.styles.Description.Render(l.usage))
	}
	return builder.String()
}

func hasDefault(f *pflag.Flag) bool {
	switch f.DefValue {
	case "", "false", "0", "[]":
		return false
	}
	return f.Value.Type() != "bool"
}

// formatGrammars lists registered grammar names with their descriptions.
func (h *HelpFormatter) formatGrammars() string {
	grammars := grammar.DefaultRegistry.Grammars()

	width := 0
	for _, g := range grammars {
		width = max(width, len(g.Name()))
	}

	lines := make([]string, 0, len(grammars))
	for _, g := range grammars {
		lines = append(lines, "  "+h.styles.Subcommand.Render(rpad(g.Name(), width))+" "+g.Description())
	}
	return strings.Join(lines, "\n")
}

// formatEnvVars lists the PARSEKIT_* variables that override configuration.
func (h *HelpFormatter) formatEnvVars() string {
	vars := configloader.ListEnvVars()
	names := slices.Sorted(maps.Keys(vars))

	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, "  "+h.styles.Flag.Render(rpad(name, width))+"   "+vars[name])
	}
	return strings.Join(lines, "\n")
}

// ApplyToCommand installs the styled help and usage output on cmd. Subcommands
// inherit both from their parent.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(command *cobra.Command) error {
		if err := h.usage.Execute(command.OutOrStderr(), command); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := h.help.Execute(command.OutOrStdout(), command); err != nil {
			command.PrintErrln(err)
		}
	})
}

// rpad adds padding to the right of a string.
func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

// trimTrailingWhitespaces removes trailing whitespace from lines.
func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
