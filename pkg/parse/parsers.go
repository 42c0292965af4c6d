package parse

import (
	"strconv"
	"unicode"
)

// Digit matches a single ASCII decimal digit.
//
//nolint:gochecknoglobals // Immutable parser values.
var (
	Digit = CharIn("0123456789")

	// SingleWhitespace matches one whitespace character as classified by
	// IsSpace.
	SingleWhitespace = CharWhere(IsSpace)

	// AllWhitespace matches a possibly empty run of whitespace. It never fails.
	AllWhitespace = StarJoin(SingleWhitespace)

	// Int matches an optionally signed run of digits and converts it to int.
	// A lone sign, an empty match or an out of range value is a failure and
	// consumes nothing.
	Int = Transform(
		Must(ChainJoin(
			Must(AnyOfOrEmpty(Literal("-"), Literal("+"))),
			StarJoin(Digit),
		)),
		strconv.Atoi,
	)
)

// IsSpace reports whether r is whitespace: a unicode.IsSpace rune or one of
// the ASCII information separators U+001C through U+001F.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

// EOF returns a parser that matches only the empty input.
func EOF[T any]() Parser[T] {
	return func(input string) Result[T] {
		if input != "" {
			return Failure[T](input)
		}
		return Empty[T](input)
	}
}

// Noop returns a parser that always matches without consuming anything.
func Noop[T any]() Parser[T] {
	return func(input string) Result[T] {
		return Empty[T](input)
	}
}
