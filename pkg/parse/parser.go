package parse

// Parser maps an input string to a Result.
//
// Implementations must leave Rest equal to a suffix of input, and equal to
// input itself whenever OK is false.
type Parser[T any] func(input string) Result[T]

// Parse runs p against input.
func (p Parser[T]) Parse(input string) Result[T] {
	return p(input)
}

// Erase converts p into a parser producing untyped values, so parsers of
// different value types can be sequenced with Chain or alternated with AnyOf.
func Erase[T any](p Parser[T]) Parser[any] {
	return func(input string) Result[any] {
		res := p(input)
		if !res.OK {
			return Failure[any](input)
		}
		if !res.HasValue {
			return Empty[any](res.Rest)
		}
		return Success[any](res.Value, res.Rest)
	}
}

// Must returns p, panicking if err is non-nil. It is intended for package
// level parser definitions whose construction arguments are fixed.
func Must[T any](p Parser[T], err error) Parser[T] {
	if err != nil {
		panic(err)
	}
	return p
}
