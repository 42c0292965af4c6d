package parse

// Result is the outcome of a single parser invocation.
type Result[T any] struct {
	// OK reports whether the parser matched.
	OK bool

	// Value is the parsed value. Only meaningful when HasValue is true.
	Value T

	// HasValue reports whether Value is present. A successful result may
	// carry no value (Optional, Fails, EOF, Noop).
	HasValue bool

	// Rest is the unconsumed suffix of the input. On failure it is the
	// input exactly.
	Rest string
}

// Success returns a matched result carrying value.
func Success[T any](value T, rest string) Result[T] {
	return Result[T]{OK: true, Value: value, HasValue: true, Rest: rest}
}

// Empty returns a matched result without a value.
func Empty[T any](rest string) Result[T] {
	return Result[T]{OK: true, Rest: rest}
}

// Failure returns a failed result that rolls back to input.
func Failure[T any](input string) Result[T] {
	return Result[T]{Rest: input}
}

// Get returns the value and whether it is present.
func (r Result[T]) Get() (T, bool) {
	return r.Value, r.HasValue
}

// Consumed returns the prefix of input that r consumed.
// input must be the string the producing parser was invoked with.
func (r Result[T]) Consumed(input string) string {
	if len(r.Rest) > len(input) {
		return ""
	}
	return input[:len(input)-len(r.Rest)]
}
