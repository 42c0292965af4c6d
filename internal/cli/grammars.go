package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/parsekit/internal/ui/pretty"
	"github.com/yaklabco/parsekit/pkg/grammar"
)

type grammarsFlags struct {
	format string
}

const formatJSON = "json"

// grammarInfo represents a grammar in JSON output.
type grammarInfo struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases"`
	Description string   `json:"description"`
	Example     string   `json:"example"`
}

func newGrammarsCommand() *cobra.Command {
	flags := &grammarsFlags{}

	cmd := &cobra.Command{
		Use:     "grammars",
		Aliases: []string{"list"},
		Short:   "List available grammars",
		Long: `List all registered grammars with their aliases, a description
and an example input each one accepts.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			grammars := grammar.DefaultRegistry.Grammars()

			switch flags.format {
			case formatJSON:
				return outputGrammarsJSON(cmd.OutOrStdout(), grammars)
			case "", "text":
				color, _ := cmd.Flags().GetString(flagColor) //nolint:errcheck // Persistent flag always exists.
				styles := pretty.NewStyles(pretty.IsColorEnabled(color, cmd.OutOrStdout()))
				return outputGrammarsText(cmd.OutOrStdout(), styles, grammars)
			default:
				return fmt.Errorf("invalid format %q: must be text or json", flags.format)
			}
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")

	return cmd
}

func outputGrammarsText(w io.Writer, styles *pretty.Styles, grammars []grammar.Grammar) error {
	width := 0
	for _, g := range grammars {
		width = max(width, len(g.Name()))
	}

	var builder strings.Builder
	for _, g := range grammars {
		builder.WriteString("  ")
		builder.WriteString(styles.GrammarName.Render(g.Name()))
		builder.WriteString(strings.Repeat(" ", width-len(g.Name())+2))
		builder.WriteString(g.Description())
		if aliases := g.Aliases(); len(aliases) > 0 {
			builder.WriteString(" ")
			builder.WriteString(styles.Alias.Render("(aliases: " + strings.Join(aliases, ", ") + ")"))
		}
		builder.WriteString("\n")
		builder.WriteString(strings.Repeat(" ", width+4))
		builder.WriteString(styles.Dim.Render("example: " + pretty.FormatValue(g.Example())))
		builder.WriteString("\n")
	}

	if _, err := io.WriteString(w, builder.String()); err != nil {
		return fmt.Errorf("write grammars: %w", err)
	}
	return nil
}

// outputGrammarsJSON outputs grammars as a JSON array.
func outputGrammarsJSON(w io.Writer, grammars []grammar.Grammar) error {
	infos := make([]grammarInfo, 0, len(grammars))
	for _, g := range grammars {
		aliases := g.Aliases()
		if aliases == nil {
			aliases = []string{}
		}
		infos = append(infos, grammarInfo{
			Name:        g.Name(),
			Aliases:     aliases,
			Description: g.Description(),
			Example:     g.Example(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding grammars: %w", err)
	}
	return nil
}
