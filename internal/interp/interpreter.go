// Package interp implements the tightly coupled core of the evaluator:
// the tree-walking core evaluator (§4.D), the temporal driver (§4.E),
// the query resolver (§4.F), and the specification façade (§4.H).
// Grounded on the teacher's internal/interp/interpreter.go (top-level
// composition of the interpreter over its sub-concerns) and the
// adapter_*.go files' interface-based cycle-breaking between the
// evaluator and the foreign/callback layer.
package interp

import (
	"github.com/webltl/specverify/internal/foreign"
	"github.com/webltl/specverify/internal/ir"
	"github.com/webltl/specverify/internal/value"
)

// Diagnostic is one emission of the `trace(label, p)` form (§4.E).
type Diagnostic struct {
	Index int
	Span  *ir.Span
	Label string
}

// Interpreter composes the evaluator over a foreign-function registry
// and an optional diagnostic sink. One Interpreter is built per
// verification run and discarded with it (§3 Lifecycles).
type Interpreter struct {
	Foreign     *foreign.Registry
	Diagnostics func(Diagnostic)
}

// New builds an Interpreter with the default foreign registry
// installed.
func New() *Interpreter {
	return &Interpreter{Foreign: foreign.NewDefaultRegistry()}
}

// Apply implements foreign.Caller: it lets native primitives (e.g.
// arrayBind, arrayFilter) invoke a Function value passed to them as an
// argument, without internal/foreign importing internal/interp. The
// callback runs with an empty trace: §5 forbids foreign code from
// retaining references into the evaluator's environment beyond the
// call, and this spec's temporal forms are meant to appear in the
// top-level proposition, not inside values passed through foreign
// calls, so no trace context is threaded through.
func (i *Interpreter) Apply(fn value.Value, arg value.Value, span *ir.Span) (value.Value, error) {
	f, ok := fn.(*value.Function)
	if !ok {
		return nil, unexpectedType(span, "VFunction", fn)
	}
	if f.Native != nil {
		return f.Native(arg), nil
	}
	bodyEnv := f.Env.Bind(f.Param, value.ValueBinding(arg))
	return i.Eval(f.Body, bodyEnv, nil)
}
