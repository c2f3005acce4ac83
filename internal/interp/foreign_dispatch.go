package interp

import (
	ierrors "github.com/webltl/specverify/internal/errors"
	"github.com/webltl/specverify/internal/ir"
	"github.com/webltl/specverify/internal/value"
)

// dispatchForeign resolves a foreign-routed variable (§4.G): the
// compiled IR has already arranged for fa.Params to name the arguments
// bound in the enclosing environment in call order, so dispatch only
// needs to look them up and hand them to the registered primitive.
func (i *Interpreter) dispatchForeign(fa *ir.ForeignApply, span *ir.Span, env *value.Env, trace Trace) (value.Value, error) {
	prim, ok := i.Foreign.Lookup(fa.Qualified)
	if !ok {
		return nil, ierrors.NewForeignFunctionNotSupported(span, fa.Qualified)
	}
	if len(fa.Params) != prim.Arity {
		return nil, ierrors.NewUnexpectedError(span, "foreign function %s expects %d arguments, got %d",
			fa.Qualified, prim.Arity, len(fa.Params))
	}
	args := make([]value.Value, len(fa.Params))
	for idx, name := range fa.Params {
		v, err := i.resolveName(name, span, env, trace)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}
	return prim.Invoke(i, span, args)
}
