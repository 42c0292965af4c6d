package grammar

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

// Registry holds named grammars.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]Grammar
	aliases map[string]string // alias -> canonical name
}

// NewRegistry creates an empty grammar registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:  make(map[string]Grammar),
		aliases: make(map[string]string),
	}
}

// Register adds a grammar and its aliases to the registry.
// A grammar with the same name is replaced.
func (r *Registry) Register(g Grammar) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[g.Name()] = g
	for _, alias := range g.Aliases() {
		r.aliases[alias] = g.Name()
	}
}

// Get retrieves a grammar by name, falling back to aliases.
func (r *Registry) Get(key string) (Grammar, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if g, ok := r.byName[key]; ok {
		return g, true
	}
	if name, ok := r.aliases[key]; ok {
		g, ok := r.byName[name]
		return g, ok
	}
	return nil, false
}

// Lookup is Get returning an error naming the known grammars on a miss.
func (r *Registry) Lookup(key string) (Grammar, error) {
	if g, ok := r.Get(key); ok {
		return g, nil
	}
	return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownGrammar, key, r.Names())
}

// Grammars returns all registered grammars sorted by name.
func (r *Registry) Grammars() []Grammar {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Grammar, 0, len(r.byName))
	for _, g := range r.byName {
		result = append(result, g)
	}

	slices.SortFunc(result, func(a, b Grammar) int {
		return cmp.Compare(a.Name(), b.Name())
	})

	return result
}

// Names returns all registered grammar names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byName))
	for name := range r.byName {
		result = append(result, name)
	}

	slices.Sort(result)
	return result
}

// DefaultRegistry holds the built-in grammars.
//
//nolint:gochecknoglobals // Global registry is intentional for grammar lookup
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	reg := NewRegistry()
	RegisterAll(reg)
	return reg
}
