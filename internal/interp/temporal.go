package interp

import (
	ierrors "github.com/webltl/specverify/internal/errors"
	"github.com/webltl/specverify/internal/ir"
	"github.com/webltl/specverify/internal/value"
)

// EvalProposition is the temporal driver's top-level entry point
// (§4.E "Empty trace"): the only place evaluation is allowed to begin
// against a possibly-empty trace. Everywhere else in the evaluator,
// the trace reaching a call is already known non-empty by
// construction, because the only way to shorten it below empty is
// through `next`, which re-enters here rather than calling Eval
// directly.
func (i *Interpreter) EvalProposition(expr ir.Expr, env *value.Env, trace Trace) (value.Value, error) {
	if len(trace) > 0 {
		return i.Eval(expr, env, trace)
	}
	if !headIsAlways(expr) {
		return nil, ierrors.NewUndetermined()
	}
	// A top-level `always p` on an empty trace is vacuously true;
	// evalAlways's own empty-trace branch produces Bool(true) directly,
	// so ordinary dispatch is safe here.
	return i.Eval(expr, env, trace)
}

// headIsAlways reports whether expr is syntactically `always <arg>`
// (one argument), the only shape exempted from failing Undetermined
// on an empty trace (§4.E "Empty trace").
func headIsAlways(expr ir.Expr) bool {
	app, ok := expr.(*ir.Application)
	if !ok {
		return false
	}
	head, args := flattenSpine(app)
	v, ok := head.(*ir.Variable)
	return ok && v.Annotation.Foreign == nil && v.Name == "always" && len(args) == 1
}

// evalSpecialForm dispatches a recognized temporal or query form to
// its handler (§4.E, §4.F). isSpecialForm has already checked name and
// arity.
func (i *Interpreter) evalSpecialForm(name string, span *ir.Span, args []ir.Expr, env *value.Env, trace Trace) (value.Value, error) {
	switch name {
	case "always":
		return i.evalAlways(args[0], span, env, trace)
	case "next":
		return i.evalNext(args[0], span, env, trace)
	case "trace":
		return i.evalTraceForm(args[0], args[1], span, env, trace)
	case "_property":
		return i.evalElementStateForm(value.StateProperty, args[0], span, env, trace)
	case "_attribute":
		return i.evalElementStateForm(value.StateAttribute, args[0], span, env, trace)
	case "_queryAll":
		return i.evalQueryAll(args[0], args[1], span, env, trace)
	default:
		return nil, ierrors.NewUnexpectedError(span, "unknown special form %s", name)
	}
}

// evalAlways evaluates `p` against every remaining state of trace,
// conjoining without short-circuiting so that diagnostics embedded in
// `p` (via `trace(label, p)`) fire once per visited state, and catches
// an Undetermined result at any one state as Bool(true) so a late
// unknown does not falsify the whole conjunction (§4.E "always p").
func (i *Interpreter) evalAlways(pExpr ir.Expr, span *ir.Span, env *value.Env, trace Trace) (value.Value, error) {
	if len(trace) == 0 {
		return value.Bool(true), nil
	}
	headVal, err := i.Eval(pExpr, env, trace)
	if err != nil {
		if ierrors.Is(err, ierrors.Undetermined) {
			headVal = value.Bool(true)
		} else {
			return nil, err
		}
	}
	headBool, ok := headVal.(value.Bool)
	if !ok {
		return nil, unexpectedType(span, "VBool", headVal)
	}
	tailVal, err := i.evalAlways(pExpr, span, env, trace.Tail())
	if err != nil {
		return nil, err
	}
	tailBool := tailVal.(value.Bool)
	return value.Bool(bool(headBool) && bool(tailBool)), nil
}

// evalNext drops the head of the trace and re-enters the temporal
// driver over the shortened trace (§4.E "next p"). Unlike `always`,
// `next` does not catch Undetermined: an empty trace after dropping
// the head fails Undetermined unless `p` is itself a vacuous `always`.
func (i *Interpreter) evalNext(pExpr ir.Expr, span *ir.Span, env *value.Env, trace Trace) (value.Value, error) {
	return i.EvalProposition(pExpr, env, trace.Tail())
}

// evalTraceForm evaluates `label` to a string, emits a diagnostic
// carrying the current trace index and the form's source span, then
// evaluates and returns `p` unchanged (§4.E "trace(label, p)").
func (i *Interpreter) evalTraceForm(labelExpr, pExpr ir.Expr, span *ir.Span, env *value.Env, trace Trace) (value.Value, error) {
	labelVal, err := i.Eval(labelExpr, env, trace)
	if err != nil {
		return nil, err
	}
	label, ok := labelVal.(value.String)
	if !ok {
		return nil, unexpectedType(span, "VString", labelVal)
	}
	if i.Diagnostics != nil {
		head, ok := trace.Head()
		index := 0
		if ok {
			index = head.Index
		}
		i.Diagnostics(Diagnostic{Index: index, Span: span, Label: string(label)})
	}
	return i.Eval(pExpr, env, trace)
}

// evalElementStateForm evaluates `name` to a string and builds the
// corresponding opaque ElementState selector (§4.E
// "_property(name)/_attribute(name)").
func (i *Interpreter) evalElementStateForm(kind value.ElementStateKind, nameExpr ir.Expr, span *ir.Span, env *value.Env, trace Trace) (value.Value, error) {
	nameVal, err := i.Eval(nameExpr, env, trace)
	if err != nil {
		return nil, err
	}
	name, ok := nameVal.(value.String)
	if !ok {
		return nil, unexpectedType(span, "VString", nameVal)
	}
	return &value.ElementState{StateKind: kind, Name: string(name)}, nil
}
