// Package parse provides composable string parsers.
//
// A Parser is a pure function from an input string to a Result carrying a
// success flag, an optional value and the unconsumed remainder of the input.
// Parsers are built from generators (TakeN, CharIn, Literal) and base parsers
// (Digit, AllWhitespace, Int, ...) and combined with higher-order functions
// (Star, Chain, AnyOf, Transform, ...).
//
// Every parser honors the rollback rule: a failed Result always carries the
// exact input it was given as its remainder, so an enclosing alternative can
// retry from the same position.
//
// Failures come in three tiers:
//
//   - in-band: Result.OK is false. This is ordinary backtracking.
//   - construction: combinators built from an empty parser list return
//     ErrNoParsers before any input is seen.
//   - terminal: Finalize converts an in-band failure, or leftover input,
//     into a *FinalizeError for the top-level caller.
//
// Parsers hold no mutable state and may be shared between goroutines.
package parse
