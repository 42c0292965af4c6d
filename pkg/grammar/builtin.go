package grammar

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yaklabco/parsekit/pkg/parse"
)

var (
	// ErrUnknownGrammar is returned by Registry.Lookup for an unregistered name.
	ErrUnknownGrammar = errors.New("unknown grammar")

	errEmptyMatch = errors.New("empty match")
)

// Built-in parsers.
//
//nolint:gochecknoglobals // Immutable parser values.
var (
	// IntPair matches two integers separated by whitespace, with optional
	// leading whitespace and trailing whitespace after the second.
	IntPair = parse.Must(parse.Chain(
		parse.IgnoreWhitespace(parse.Int, parse.Before),
		parse.IgnoreWhitespace(parse.Int, parse.Around),
	))

	// IntList matches zero or more whitespace separated integers.
	IntList = parse.Star(parse.IgnoreWhitespace(parse.Int, parse.Around))

	// Digits matches a possibly empty run of digits as a string.
	Digits = parse.StarJoin(parse.Digit)

	// Word matches one or more non-whitespace characters.
	Word = parse.Transform(
		parse.StarJoin(parse.CharWhere(func(r rune) bool { return !parse.IsSpace(r) })),
		nonEmpty,
	)

	// Decimal matches an optionally signed decimal number with an optional
	// fractional part, such as "-12.50". A trailing "." is not consumed.
	Decimal = parse.Transform(
		parse.Must(parse.ChainJoin(
			parse.Must(parse.AnyOfOrEmpty(parse.Literal("-"), parse.Literal("+"))),
			digitRun,
			parse.Optional(parse.Must(parse.ChainJoin(parse.Literal("."), digitRun))),
		)),
		func(s string) (decimal.Decimal, error) {
			return decimal.NewFromString(strings.TrimPrefix(s, "+"))
		},
	)

	digitRun = parse.Transform(parse.StarJoin(parse.Digit), nonEmpty)
)

func nonEmpty(s string) (string, error) {
	if s == "" {
		return "", errEmptyMatch
	}
	return s, nil
}

// RegisterAll registers all built-in grammars with the given registry.
func RegisterAll(registry *Registry) {
	registry.Register(New("int", "Optionally signed decimal integer", "-50", parse.Int, "integer"))
	registry.Register(New("int-pair", "Two whitespace separated integers", " 00034 230 ", IntPair, "pair", "demo"))
	registry.Register(New("int-list", "Whitespace separated integers", "1 -2 +3", IntList, "ints"))
	registry.Register(New("decimal", "Optionally signed decimal number", "-12.50", Decimal, "dec"))
	registry.Register(New("digits", "Run of decimal digits, leading zeros kept", "007", Digits))
	registry.Register(New("whitespace", "Run of whitespace characters", " \t ", parse.AllWhitespace, "ws"))
	registry.Register(New("word", "Run of non-whitespace characters", "hello", Word))
}
