// Package runner runs a grammar over many inputs concurrently.
package runner

import (
	"github.com/yaklabco/parsekit/pkg/grammar"
	"github.com/yaklabco/parsekit/pkg/parse"
)

// Options controls a run.
type Options struct {
	// Inputs are the texts to parse, in reporting order.
	Inputs []Input

	// Grammar parses each input. Required.
	Grammar grammar.Grammar

	// AllowRemaining accepts matches that leave unparsed input behind.
	AllowRemaining bool

	// Trim enables whitespace trimming around the grammar using Whitespace.
	Trim bool

	// Whitespace is the trimming mode applied when Trim is set.
	Whitespace parse.WhitespaceMode

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int
}

// finalizer builds the terminal parse function described by o.
func (o Options) finalizer() parse.Finalizer[any] {
	p := o.Grammar.Parser()
	if o.Trim {
		p = parse.IgnoreWhitespace(p, o.Whitespace)
	}
	return parse.Finalize(p, parse.AllowRemainingIf(o.AllowRemaining))
}
