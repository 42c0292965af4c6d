// Package grammar provides named, ready-made parsers built from package parse
// and a registry to look them up by name or alias.
package grammar

import "github.com/yaklabco/parsekit/pkg/parse"

// Grammar is a named parser.
type Grammar interface {
	// Name is the canonical name used on the command line.
	Name() string

	// Aliases are alternative names accepted by the registry.
	Aliases() []string

	// Description is a one-line summary.
	Description() string

	// Example is a sample input the grammar accepts in full.
	Example() string

	// Parser returns the parser. Values are untyped so grammars with
	// different value types can share a registry.
	Parser() parse.Parser[any]
}

// Definition is the Grammar implementation used by the built-in grammars.
//
// Fields are unexported to avoid name collisions with interface methods.
type Definition struct {
	name    string
	aliases []string
	desc    string
	example string
	parser  parse.Parser[any]
}

// New creates a Definition. Values produced by p are erased to any.
func New[T any](name, desc, example string, p parse.Parser[T], aliases ...string) *Definition {
	return &Definition{
		name:    name,
		aliases: aliases,
		desc:    desc,
		example: example,
		parser:  parse.Erase(p),
	}
}

// Name returns the canonical name.
func (d *Definition) Name() string {
	return d.name
}

// Aliases returns the alternative names.
func (d *Definition) Aliases() []string {
	return d.aliases
}

// Description returns the one-line summary.
func (d *Definition) Description() string {
	return d.desc
}

// Example returns a sample input.
func (d *Definition) Example() string {
	return d.example
}

// Parser returns the untyped parser.
func (d *Definition) Parser() parse.Parser[any] {
	return d.parser
}
