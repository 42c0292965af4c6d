package parse

// Finalizer runs a parser to completion and reports failure as an error.
type Finalizer[T any] func(input string) (T, error)

// FinalizeOption configures Finalize.
type FinalizeOption func(*finalizeOptions)

type finalizeOptions struct {
	allowRemaining bool
}

// AllowRemaining makes a Finalizer discard unconsumed input instead of
// treating it as an error.
func AllowRemaining() FinalizeOption {
	return func(o *finalizeOptions) {
		o.allowRemaining = true
	}
}

// AllowRemainingIf is AllowRemaining when allow is true and a no-op otherwise.
func AllowRemainingIf(allow bool) FinalizeOption {
	return func(o *finalizeOptions) {
		o.allowRemaining = o.allowRemaining || allow
	}
}

// Finalize turns p into a Finalizer. The Finalizer returns a *FinalizeError
// wrapping ErrNoMatch when p fails, and wrapping ErrUnparsedInput when p
// leaves input behind, unless AllowRemaining is given.
//
// A match without a value yields the zero value of T and a nil error.
func Finalize[T any](p Parser[T], opts ...FinalizeOption) Finalizer[T] {
	var cfg finalizeOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(input string) (T, error) {
		var zero T

		res := p(input)
		if !res.OK {
			return zero, &FinalizeError{Input: input, Remaining: input, Err: ErrNoMatch}
		}
		if res.Rest != "" && !cfg.allowRemaining {
			return zero, &FinalizeError{Input: input, Remaining: res.Rest, Err: ErrUnparsedInput}
		}
		return res.Value, nil
	}
}
