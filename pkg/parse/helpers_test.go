package parse_test

import (
	"strconv"

	"github.com/yaklabco/parsekit/pkg/parse"
)

// These parsers are defined independently of the package so combinator
// tests do not depend on the generators under test.

func take(input string) parse.Result[string] {
	if input == "" {
		return parse.Failure[string](input)
	}
	return parse.Success(input[:1], input[1:])
}

func get(prefix string) parse.Parser[string] {
	return func(input string) parse.Result[string] {
		if len(input) < len(prefix) || input[:len(prefix)] != prefix {
			return parse.Failure[string](input)
		}
		return parse.Success(prefix, input[len(prefix):])
	}
}

func oneDigit(input string) parse.Result[int] {
	if input == "" {
		return parse.Failure[int](input)
	}
	n, err := strconv.Atoi(input[:1])
	if err != nil {
		return parse.Failure[int](input)
	}
	return parse.Success(n, input[1:])
}

func constant[T any](ok bool) parse.Parser[T] {
	return func(input string) parse.Result[T] {
		if ok {
			return parse.Empty[T](input)
		}
		return parse.Failure[T](input)
	}
}
