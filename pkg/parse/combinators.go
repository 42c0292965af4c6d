package parse

import "strings"

// Star returns a parser that applies p until it fails and collects the
// values. It always succeeds, with an empty slice when p never matches.
//
// Each iteration must consume input or fail; a step that succeeds without
// consuming ends the repetition so a zero-width p cannot loop forever.
func Star[T any](p Parser[T]) Parser[[]T] {
	return func(input string) Result[[]T] {
		values := make([]T, 0)
		rest := input
		for {
			res := p(rest)
			if !res.OK {
				break
			}
			if res.HasValue {
				values = append(values, res.Value)
			}
			if len(res.Rest) == len(rest) {
				break
			}
			rest = res.Rest
		}
		return Success(values, rest)
	}
}

// StarJoin is Star for string parsers, concatenating the matches.
func StarJoin(p Parser[string]) Parser[string] {
	return func(input string) Result[string] {
		var joined strings.Builder
		rest := input
		for {
			res := p(rest)
			if !res.OK {
				break
			}
			if res.HasValue {
				joined.WriteString(res.Value)
			}
			if len(res.Rest) == len(rest) {
				break
			}
			rest = res.Rest
		}
		return Success(joined.String(), rest)
	}
}

// Optional returns a parser that never fails. When p fails the result has
// no value and the remainder p reported.
func Optional[T any](p Parser[T]) Parser[T] {
	return func(input string) Result[T] {
		res := p(input)
		if res.OK {
			return res
		}
		return Empty[T](res.Rest)
	}
}

// Fails returns a zero-width parser that matches exactly when p does not.
// It never consumes input and never carries a value.
func Fails[T any](p Parser[T]) Parser[T] {
	return func(input string) Result[T] {
		if p(input).OK {
			return Failure[T](input)
		}
		return Empty[T](input)
	}
}

// Transform returns a parser that maps the value of p through fn.
// If fn returns an error the whole match is revoked: the result is a
// failure and the remainder is the original input.
// A match without a value is passed through without calling fn.
func Transform[A, B any](p Parser[A], fn func(A) (B, error)) Parser[B] {
	return func(input string) Result[B] {
		res := p(input)
		if !res.OK {
			return Failure[B](input)
		}
		if !res.HasValue {
			return Empty[B](res.Rest)
		}
		value, err := fn(res.Value)
		if err != nil {
			return Failure[B](input)
		}
		return Success(value, res.Rest)
	}
}

// Map is Transform with an infallible mapping.
func Map[A, B any](p Parser[A], fn func(A) B) Parser[B] {
	return Transform(p, func(a A) (B, error) {
		return fn(a), nil
	})
}

// Chain returns a parser that runs parsers left to right, each on the
// remainder of the previous one, and collects their values in order.
// A step without a value contributes the zero value of T.
// If any step fails the whole chain fails and rolls back to its input.
func Chain[T any](parsers ...Parser[T]) (Parser[[]T], error) {
	return chain(parsers, false)
}

// ChainSkipEmpty is Chain, except steps without a value are left out of
// the collected slice.
func ChainSkipEmpty[T any](parsers ...Parser[T]) (Parser[[]T], error) {
	return chain(parsers, true)
}

func chain[T any](parsers []Parser[T], skipEmpty bool) (Parser[[]T], error) {
	if len(parsers) == 0 {
		return nil, ErrNoParsers
	}
	steps := append([]Parser[T](nil), parsers...)

	return func(input string) Result[[]T] {
		values := make([]T, 0, len(steps))
		rest := input
		for _, step := range steps {
			res := step(rest)
			if !res.OK {
				return Failure[[]T](input)
			}
			if res.HasValue || !skipEmpty {
				values = append(values, res.Value)
			}
			rest = res.Rest
		}
		return Success(values, rest)
	}, nil
}

// ChainJoin is Chain for string parsers. Values are concatenated and steps
// without a value are skipped.
func ChainJoin(parsers ...Parser[string]) (Parser[string], error) {
	if len(parsers) == 0 {
		return nil, ErrNoParsers
	}
	steps := append([]Parser[string](nil), parsers...)

	return func(input string) Result[string] {
		var joined strings.Builder
		rest := input
		for _, step := range steps {
			res := step(rest)
			if !res.OK {
				return Failure[string](input)
			}
			if res.HasValue {
				joined.WriteString(res.Value)
			}
			rest = res.Rest
		}
		return Success(joined.String(), rest)
	}, nil
}

// AnyOf returns a parser that tries parsers in order on the same input and
// returns the first match unchanged. It fails when none match.
func AnyOf[T any](parsers ...Parser[T]) (Parser[T], error) {
	return anyOf(parsers, true)
}

// AnyOfOrEmpty is AnyOf, except that when none match it succeeds with no
// value and consumes nothing.
func AnyOfOrEmpty[T any](parsers ...Parser[T]) (Parser[T], error) {
	return anyOf(parsers, false)
}

func anyOf[T any](parsers []Parser[T], atLeastOne bool) (Parser[T], error) {
	if len(parsers) == 0 {
		return nil, ErrNoParsers
	}
	alternatives := append([]Parser[T](nil), parsers...)

	return func(input string) Result[T] {
		for _, alt := range alternatives {
			if res := alt(input); res.OK {
				return res
			}
		}
		if atLeastOne {
			return Failure[T](input)
		}
		return Empty[T](input)
	}, nil
}
