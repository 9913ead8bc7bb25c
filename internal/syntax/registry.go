package syntax

import (
	"fmt"
	"sort"
)

// Registry maps callable function names to their required arity.
// Names in the registry are reserved: they always parse as calls.
type Registry struct {
	arity map[string]int
}

// NewRegistry returns a registry holding the built-in functions
// (factorial with one argument).
func NewRegistry() *Registry {
	return &Registry{arity: map[string]int{"factorial": 1}}
}

// Define adds or replaces a function.
func (r *Registry) Define(name string, arity int) error {
	if arity < 0 {
		return fmt.Errorf("function %q: negative arity %d", name, arity)
	}
	if LookupKeyword(name) != _Name {
		return fmt.Errorf("function %q: name is a keyword", name)
	}
	r.arity[name] = arity
	return nil
}

// Arity returns the required arity of name and whether name is defined.
func (r *Registry) Arity(name string) (int, bool) {
	n, ok := r.arity[name]
	return n, ok
}

// Names returns the defined function names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.arity))
	for name := range r.arity {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
