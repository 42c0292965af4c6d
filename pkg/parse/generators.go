package parse

import (
	"strings"
	"unicode/utf8"
)

// TakeN returns a parser that consumes exactly n characters.
// It fails when fewer than n characters remain.
func TakeN(n int) Parser[string] {
	return func(input string) Result[string] {
		if n < 0 {
			return Failure[string](input)
		}
		end := 0
		for range n {
			if end >= len(input) {
				return Failure[string](input)
			}
			_, size := utf8.DecodeRuneInString(input[end:])
			end += size
		}
		return Success(input[:end], input[end:])
	}
}

// CharIn returns a parser that consumes one character if it is a member of set.
func CharIn(set string) Parser[string] {
	return CharWhere(func(r rune) bool {
		return strings.ContainsRune(set, r)
	})
}

// CharWhere returns a parser that consumes one character satisfying pred.
func CharWhere(pred func(rune) bool) Parser[string] {
	return func(input string) Result[string] {
		if input == "" {
			return Failure[string](input)
		}
		r, size := utf8.DecodeRuneInString(input)
		if !pred(r) {
			return Failure[string](input)
		}
		return Success(input[:size], input[size:])
	}
}

// Literal returns a parser that matches prefix exactly.
func Literal(prefix string) Parser[string] {
	return func(input string) Result[string] {
		if !strings.HasPrefix(input, prefix) {
			return Failure[string](input)
		}
		return Success(prefix, input[len(prefix):])
	}
}
