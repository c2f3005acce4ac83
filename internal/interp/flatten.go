package interp

import (
	"github.com/webltl/specverify/internal/errors"
	"github.com/webltl/specverify/internal/ir"
	"github.com/webltl/specverify/internal/value"
)

// flattenSpine walks a left-nested chain of Applications down to its
// head and returns the head alongside its arguments in call order
// (outermost application's Arg last). A bare, unapplied expression
// returns itself with no arguments.
func flattenSpine(e *ir.Application) (ir.Expr, []ir.Expr) {
	var args []ir.Expr
	var head ir.Expr = e
	for {
		app, ok := head.(*ir.Application)
		if !ok {
			break
		}
		args = append(args, app.Arg)
		head = app.Fn
	}
	// args were collected innermost-last; reverse to call order.
	for l, r := 0, len(args)-1; l < r; l, r = l+1, r-1 {
		args[l], args[r] = args[r], args[l]
	}
	return head, args
}

// isSpecialForm reports whether head is a bare reference to one of the
// temporal/query forms (§4.E, §4.F) applied to exactly its fixed
// arity. A foreign-routed variable of the same name is never treated
// as a special form.
func isSpecialForm(head ir.Expr, args []ir.Expr) bool {
	v, ok := head.(*ir.Variable)
	if !ok || v.Annotation.Foreign != nil {
		return false
	}
	arity, known := specialForms[v.Name]
	return known && len(args) == arity
}

// unexpectedType builds the EvalError raised whenever a node requires
// a value of a particular tag and finds a different one (§7
// UnexpectedType).
func unexpectedType(span *ir.Span, expectedTag string, actual value.Value) error {
	return errors.NewUnexpectedType(span, expectedTag, actual)
}
