package value

import "strings"

// Binding is either an unevaluated module-level expression or an
// already-computed Value (locals, let-bound values, foreign stubs).
// Expr is an ir.Expr, kept as interface{} here to avoid an import
// cycle (ir has no reason to depend on value); the evaluator type
// -asserts it back.
type Binding struct {
	Value  Value
	Expr   interface{}
	isExpr bool
}

// ExprBinding constructs a Binding over an unevaluated expression.
func ExprBinding(expr interface{}) Binding {
	return Binding{Expr: expr, isExpr: true}
}

// ValueBinding constructs a Binding over an already-computed Value.
func ValueBinding(v Value) Binding {
	return Binding{Value: v}
}

// IsExpr reports whether this binding holds an unevaluated expression.
func (b Binding) IsExpr() bool { return b.isExpr }

// frame is one layer of bindings added by Bind or Union.
type frame map[string]Binding

// Env is the layered binding environment (§4.B). Frames are searched
// most-recently-added first, which is how shadowing is realized: Bind
// prepends a single-entry frame, Union prepends all of another Env's
// frames ahead of the receiver's, so the union's bindings are
// right-biased (they shadow the receiver's on conflicting names).
type Env struct {
	frames []frame
}

// NewEnv returns an empty environment.
func NewEnv() *Env { return &Env{} }

// Bind returns a new environment extending e with one additional
// binding. Bind never removes existing bindings; a name bound again
// simply shadows the earlier one via frame order.
func (e *Env) Bind(name string, b Binding) *Env {
	f := frame{name: b}
	out := &Env{frames: make([]frame, 0, len(e.frames)+1)}
	out.frames = append(out.frames, f)
	out.frames = append(out.frames, e.frames...)
	return out
}

// BindAll returns a new environment extending e with a whole frame's
// worth of bindings at once (used for let-groups, the module-level
// environment and case-alternative bindings, so that a mutually
// recursive group can reference itself).
func (e *Env) BindAll(bindings map[string]Binding) *Env {
	f := make(frame, len(bindings))
	for k, v := range bindings {
		f[k] = v
	}
	out := &Env{frames: make([]frame, 0, len(e.frames)+1)}
	out.frames = append(out.frames, f)
	out.frames = append(out.frames, e.frames...)
	return out
}

// Lookup searches frames from most-recently-added to oldest.
func (e *Env) Lookup(name string) (Binding, bool) {
	if e == nil {
		return Binding{}, false
	}
	for _, f := range e.frames {
		if b, ok := f[name]; ok {
			return b, true
		}
	}
	return Binding{}, false
}

// Union returns a new environment where other's bindings shadow e's on
// any overlapping name (right-biased union, §4.B).
func (e *Env) Union(other *Env) *Env {
	if other == nil {
		return e
	}
	out := &Env{frames: make([]frame, 0, len(e.frames)+len(other.frames))}
	out.frames = append(out.frames, other.frames...)
	out.frames = append(out.frames, e.frames...)
	return out
}

// WithoutLocals returns a view of e containing only qualified bindings
// (names containing a ".", i.e. module-level definitions), collapsed
// into a single frame. Used when re-entering a module-level expression
// so it cannot see call-site locals (§3 Invariants, §4.D Variable rule).
func (e *Env) WithoutLocals() *Env {
	flat := frame{}
	// Walk oldest-to-newest so newer bindings of the same qualified
	// name (there should be none in practice) still win.
	for i := len(e.frames) - 1; i >= 0; i-- {
		for name, b := range e.frames[i] {
			if strings.Contains(name, ".") {
				flat[name] = b
			}
		}
	}
	return &Env{frames: []frame{flat}}
}
