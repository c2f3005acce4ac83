package interp

import (
	ierrors "github.com/webltl/specverify/internal/errors"
	"github.com/webltl/specverify/internal/ir"
	"github.com/webltl/specverify/internal/value"
)

// evalAccessor projects a single field out of an Object (§4.D). Unlike
// Prelude.recordGet, a missing key here is a programmer error in the
// compiled IR, not a runtime-data condition, so it raises
// UnexpectedError rather than ForeignFunctionError.
func (i *Interpreter) evalAccessor(e *ir.Accessor, env *value.Env, trace Trace) (value.Value, error) {
	targetVal, err := i.Eval(e.Target, env, trace)
	if err != nil {
		return nil, err
	}
	obj, ok := targetVal.(*value.Object)
	if !ok {
		return nil, unexpectedType(e.Annotation.Span, "VObject", targetVal)
	}
	v, ok := obj.Get(e.Field)
	if !ok {
		return nil, ierrors.NewUnexpectedError(e.Annotation.Span, "key not present: %s", e.Field)
	}
	return v, nil
}

// evalObjectUpdate evaluates Target to an Object and right-biased
// merges in the evaluated Updates, preserving the position of existing
// keys and appending new ones in the order given (§4.D "Record
// update").
func (i *Interpreter) evalObjectUpdate(e *ir.ObjectUpdate, env *value.Env, trace Trace) (value.Value, error) {
	targetVal, err := i.Eval(e.Target, env, trace)
	if err != nil {
		return nil, err
	}
	obj, ok := targetVal.(*value.Object)
	if !ok {
		return nil, unexpectedType(e.Annotation.Span, "VObject", targetVal)
	}
	keys := make([]string, len(e.Updates))
	vals := make([]value.Value, len(e.Updates))
	for idx, u := range e.Updates {
		v, err := i.Eval(u.Rhs, env, trace)
		if err != nil {
			return nil, err
		}
		keys[idx] = u.Field
		vals[idx] = v
	}
	return obj.Update(keys, vals), nil
}
