package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yaklabco/parsekit/internal/ui/pretty"
	"github.com/yaklabco/parsekit/pkg/grammar"
	"github.com/yaklabco/parsekit/pkg/parse"
)

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show the library on a few sample inputs",
		Long: `Run the integer parser on two inputs and a finalized pair of
whitespace separated integers on a third, printing each raw result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			color, _ := cmd.Flags().GetString(flagColor) //nolint:errcheck // Persistent flag always exists.
			styles := pretty.NewStyles(pretty.IsColorEnabled(color, cmd.OutOrStdout()))
			return runDemo(cmd.OutOrStdout(), styles)
		},
	}
}

func runDemo(w io.Writer, styles *pretty.Styles) error {
	lines := []string{
		describeResult(styles, "Int", "test", parse.Int.Parse("test")),
		describeResult(styles, "Int", "896847 stuff", parse.Int.Parse("896847 stuff")),
	}

	pair := parse.Finalize(grammar.IntPair)
	value, err := pair(" 00034 230 ")
	call := fmt.Sprintf("Finalize(IntPair)(%s)", strconv.Quote(" 00034 230 "))
	if err != nil {
		lines = append(lines, call+" = "+styles.Error.Render(err.Error()))
	} else {
		lines = append(lines, call+" = "+styles.Value.Render(pretty.FormatValue(value)))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write demo: %w", err)
		}
	}
	return nil
}

func describeResult[T any](styles *pretty.Styles, name, input string, res parse.Result[T]) string {
	call := fmt.Sprintf("%s(%s)", name, strconv.Quote(input))

	if !res.OK {
		return fmt.Sprintf("%s = %s, rest %s", call, styles.Failure.Render("failure"), strconv.Quote(res.Rest))
	}

	value := "<none>"
	if res.HasValue {
		value = pretty.FormatValue(res.Value)
	}
	return fmt.Sprintf("%s = %s %s, rest %s", call, styles.Success.Render("success"),
		styles.Value.Render(value), strconv.Quote(res.Rest))
}
