package parse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/parsekit/pkg/parse"
)

// propertyInputs is a small corpus mixing digits, signs, whitespace,
// letters and multibyte characters.
//
//nolint:gochecknoglobals // Read-only test fixture.
var propertyInputs = []string{
	"", " ", "a", "5", "-", "+", "-5", "12ab", "  34 56 ", "\t\n", "abc",
	"test", " test ", "a_c", "ab", "007", "--1", "+-2", "日本 語", "9999999999999999999999",
}

type untyped struct {
	name   string
	parser parse.Parser[any]
}

func combinatorCorpus() []untyped {
	sign := parse.Must(parse.AnyOf(parse.Literal("-"), parse.Literal("+")))
	spacedInt := parse.IgnoreWhitespace(parse.Int, parse.Around)

	return []untyped{
		{"TakeN(2)", parse.Erase(parse.TakeN(2))},
		{"CharIn", parse.Erase(parse.CharIn("ab"))},
		{"Literal", parse.Erase(parse.Literal("test"))},
		{"Digit", parse.Erase(parse.Digit)},
		{"SingleWhitespace", parse.Erase(parse.SingleWhitespace)},
		{"AllWhitespace", parse.Erase(parse.AllWhitespace)},
		{"EOF", parse.Erase(parse.EOF[string]())},
		{"Int", parse.Erase(parse.Int)},
		{"Star(Int)", parse.Erase(parse.Star(spacedInt))},
		{"Optional(Int)", parse.Erase(parse.Optional(parse.Int))},
		{"Fails(Digit)", parse.Erase(parse.Fails(parse.Digit))},
		{"Chain", parse.Erase(parse.Must(parse.Chain(sign, parse.Digit, parse.Digit)))},
		{"ChainSkipEmpty", parse.Erase(parse.Must(parse.ChainSkipEmpty(parse.Optional(sign), parse.Digit)))},
		{"ChainJoin", parse.Erase(parse.Must(parse.ChainJoin(parse.Literal("a"), parse.Literal("b"))))},
		{"AnyOf", parse.Erase(parse.Must(parse.AnyOf(sign, parse.Literal("test"))))},
		{"AnyOfOrEmpty", parse.Erase(parse.Must(parse.AnyOfOrEmpty(sign, parse.Literal("test"))))},
		{"IgnoreWhitespace(After)", parse.Erase(parse.IgnoreWhitespace(parse.Literal("test"), parse.After))},
		{"IgnoreWhitespace(Around)", parse.Erase(spacedInt)},
		{"Transform", parse.Erase(parse.Transform(parse.TakeN(2), func(s string) (string, error) {
			if strings.ContainsAny(s, "0123456789") {
				return s, nil
			}
			return "", assert.AnError
		}))},
	}
}

func TestProperty_RollbackAndSuffix(t *testing.T) {
	t.Parallel()

	for _, comb := range combinatorCorpus() {
		t.Run(comb.name, func(t *testing.T) {
			t.Parallel()

			for _, input := range propertyInputs {
				res := comb.parser(input)
				assert.True(t, strings.HasSuffix(input, res.Rest),
					"remainder %q is not a suffix of %q", res.Rest, input)
				if !res.OK {
					assert.Equal(t, input, res.Rest, "failure must roll back on %q", input)
					assert.False(t, res.HasValue, "failure must not carry a value on %q", input)
				}
			}
		})
	}
}

func TestProperty_Totality(t *testing.T) {
	t.Parallel()

	for _, comb := range combinatorCorpus() {
		t.Run(comb.name, func(t *testing.T) {
			t.Parallel()

			star := parse.Star(comb.parser)
			optional := parse.Optional(comb.parser)
			for _, input := range propertyInputs {
				assert.True(t, star(input).OK, "Star on %q", input)
				assert.True(t, optional(input).OK, "Optional on %q", input)
			}
		})
	}
}

func TestProperty_FinalizeStrictness(t *testing.T) {
	t.Parallel()

	for _, comb := range combinatorCorpus() {
		strict := parse.Finalize(comb.parser)
		lenient := parse.Finalize(comb.parser, parse.AllowRemaining())

		for _, input := range propertyInputs {
			res := comb.parser(input)
			if !res.OK || res.Rest == "" {
				continue
			}
			_, err := strict(input)
			assert.ErrorIs(t, err, parse.ErrUnparsedInput, "%s on %q", comb.name, input)

			got, err := lenient(input)
			assert.NoError(t, err, "%s on %q", comb.name, input)
			assert.Equal(t, res.Value, got, "%s on %q", comb.name, input)
		}
	}
}

func TestProperty_ConcurrentUse(t *testing.T) {
	t.Parallel()

	pair := parse.Must(parse.Chain(
		parse.IgnoreWhitespace(parse.Int, parse.Before),
		parse.IgnoreWhitespace(parse.Int, parse.Around),
	))

	done := make(chan parse.Result[[]int])
	for range 32 {
		go func() {
			done <- pair(" 00034 230 ")
		}()
	}
	for range 32 {
		assert.Equal(t, parse.Success([]int{34, 230}, ""), <-done)
	}
}
