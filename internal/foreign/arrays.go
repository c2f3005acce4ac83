package foreign

import (
	"github.com/webltl/specverify/internal/errors"
	"github.com/webltl/specverify/internal/ir"
	"github.com/webltl/specverify/internal/value"
)

// RegisterArrays installs array primitives, grounded on the teacher's
// internal/interp/builtins/array.go category. arrayBind is the
// primitive named in testable property S6: it requires a VArray first
// argument and a callable (Function) second argument.
func RegisterArrays(r *Registry) {
	r.Register(&Primitive{
		Qualified: "Prelude.arrayLength", Arity: 1, Category: CategoryArray,
		Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
			a, err := AsArray(span, "Prelude.arrayLength", args[0])
			if err != nil {
				return nil, err
			}
			return value.Int(len(a)), nil
		},
	})

	r.Register(&Primitive{
		Qualified: "Prelude.arrayIndex", Arity: 2, Category: CategoryArray,
		Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
			a, err := AsArray(span, "Prelude.arrayIndex", args[0])
			if err != nil {
				return nil, err
			}
			idx, err := AsInt(span, "Prelude.arrayIndex", args[1])
			if err != nil {
				return nil, err
			}
			if idx < 0 || int(idx) >= len(a) {
				return nil, errors.NewForeignFunctionError(span, "array index %d out of range (length %d)", idx, len(a))
			}
			return a[idx], nil
		},
	})

	// arrayBind :: Array a -> (a -> b) -> Array b
	r.Register(&Primitive{
		Qualified: "Prelude.arrayBind", Arity: 2, Category: CategoryArray,
		Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
			a, err := AsArray(span, "Prelude.arrayBind", args[0])
			if err != nil {
				return nil, err
			}
			fn, err := AsFunction(span, "Prelude.arrayBind", args[1])
			if err != nil {
				return nil, err
			}
			out := make(value.Array, len(a))
			for i, elem := range a {
				mapped, err := c.Apply(fn, elem, span)
				if err != nil {
					return nil, err
				}
				out[i] = mapped
			}
			return out, nil
		},
	})

	r.Register(&Primitive{
		Qualified: "Prelude.arrayFilter", Arity: 2, Category: CategoryArray,
		Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
			a, err := AsArray(span, "Prelude.arrayFilter", args[0])
			if err != nil {
				return nil, err
			}
			fn, err := AsFunction(span, "Prelude.arrayFilter", args[1])
			if err != nil {
				return nil, err
			}
			var out value.Array
			for _, elem := range a {
				kept, err := c.Apply(fn, elem, span)
				if err != nil {
					return nil, err
				}
				b, err := AsBool(span, "Prelude.arrayFilter", kept)
				if err != nil {
					return nil, err
				}
				if b {
					out = append(out, elem)
				}
			}
			return out, nil
		},
	})
}
