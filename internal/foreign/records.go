package foreign

import (
	"github.com/webltl/specverify/internal/errors"
	"github.com/webltl/specverify/internal/ir"
	"github.com/webltl/specverify/internal/value"
)

// RegisterRecords installs record-access primitives that go beyond
// the evaluator's built-in Accessor/ObjectUpdate nodes (dynamic field
// lookup by a runtime-computed name), grounded on the teacher's
// internal/interp/builtins/collections.go category.
func RegisterRecords(r *Registry) {
	r.Register(&Primitive{
		Qualified: "Prelude.recordGet", Arity: 2, Category: CategoryRecord,
		Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
			obj, err := AsObject(span, "Prelude.recordGet", args[0])
			if err != nil {
				return nil, err
			}
			key, err := AsString(span, "Prelude.recordGet", args[1])
			if err != nil {
				return nil, err
			}
			v, ok := obj.Get(key)
			if !ok {
				return nil, errors.NewForeignFunctionError(span, "key not present: %s", key)
			}
			return v, nil
		},
	})

	r.Register(&Primitive{
		Qualified: "Prelude.recordHasKey", Arity: 2, Category: CategoryRecord,
		Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
			obj, err := AsObject(span, "Prelude.recordHasKey", args[0])
			if err != nil {
				return nil, err
			}
			key, err := AsString(span, "Prelude.recordHasKey", args[1])
			if err != nil {
				return nil, err
			}
			_, ok := obj.Get(key)
			return value.Bool(ok), nil
		},
	})
}
