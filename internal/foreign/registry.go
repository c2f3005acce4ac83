// Package foreign implements the foreign-function dispatch protocol
// (§4.G): an arity-explicit registry of native primitives plus the
// marshalling layer between native Go values and the value universe.
// Individual primitive bodies are in scope per spec.md §1 ("foreign
// primitives... dispatch protocol is in scope"); they are grounded on
// the teacher's internal/interp/builtins category split
// (math_basic.go, strings_basic.go, array.go, ordinals.go) generalized
// from DWScript's builtins to this language's arithmetic/string/array/
// ordering/record-access/action-construction primitives.
package foreign

import (
	"sort"
	"sync"

	"github.com/webltl/specverify/internal/ir"
	"github.com/webltl/specverify/internal/value"
)

// Category groups primitives for documentation/introspection, mirroring
// the teacher's builtins.Category.
type Category string

const (
	CategoryArithmetic Category = "arithmetic"
	CategoryString     Category = "string"
	CategoryArray      Category = "array"
	CategoryOrdering   Category = "ordering"
	CategoryRecord     Category = "record"
	CategoryAction     Category = "action"
)

// Caller lets a primitive invoke a Function value (a callable argument,
// e.g. arrayBind's mapping function) without the foreign package
// depending on the evaluator package — the same cycle-breaking
// technique as the teacher's adapter_*.go files.
type Caller interface {
	Apply(fn value.Value, arg value.Value, span *ir.Span) (value.Value, error)
}

// InvokeFunc is the native implementation body of a primitive. args has
// exactly Arity elements, already marshalled from the current
// environment by the dispatcher.
type InvokeFunc func(c Caller, span *ir.Span, args []value.Value) (value.Value, error)

// Primitive is a single registered foreign function: the Design Notes
// require arity to be stored explicitly rather than derived from a
// type, per the "Foreign arity machinery" note.
type Primitive struct {
	Qualified   string
	Arity       int
	Category    Category
	Description string
	Invoke      InvokeFunc
}

// Registry holds every installed foreign primitive, built once during
// environment initialization and read-only thereafter (§3 Lifecycles).
type Registry struct {
	mu         sync.RWMutex
	primitives map[string]*Primitive
	byCategory map[Category][]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		primitives: make(map[string]*Primitive),
		byCategory: make(map[Category][]string),
	}
}

// Register installs a primitive under its qualified name.
func (r *Registry) Register(p *Primitive) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.primitives[p.Qualified]; !exists {
		r.byCategory[p.Category] = append(r.byCategory[p.Category], p.Qualified)
	}
	r.primitives[p.Qualified] = p
}

// Lookup resolves a qualified name to its primitive.
func (r *Registry) Lookup(qualified string) (*Primitive, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.primitives[qualified]
	return p, ok
}

// Names returns every registered qualified name, sorted, for
// diagnostics and tests.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.primitives))
	for name := range r.primitives {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// NewDefaultRegistry builds a registry with every built-in primitive
// category installed.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterArithmetic(r)
	RegisterStrings(r)
	RegisterArrays(r)
	RegisterOrdering(r)
	RegisterRecords(r)
	RegisterActions(r)
	return r
}
