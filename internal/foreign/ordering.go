package foreign

import (
	"github.com/webltl/specverify/internal/ir"
	"github.com/webltl/specverify/internal/value"
)

// RegisterOrdering installs comparison and equality primitives,
// grounded on the teacher's internal/interp/builtins/ordinals.go
// category (ordinal comparisons over DWScript's ordinal types),
// generalized to this spec's structural equality (§4.A).
func RegisterOrdering(r *Registry) {
	r.Register(&Primitive{
		Qualified: "Prelude.equal", Arity: 2, Category: CategoryOrdering,
		Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
			return value.Bool(value.StructuralEqual(args[0], args[1])), nil
		},
	})

	r.Register(&Primitive{
		Qualified: "Prelude.notEqual", Arity: 2, Category: CategoryOrdering,
		Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
			return value.Bool(!value.StructuralEqual(args[0], args[1])), nil
		},
	})

	cmp := func(name string, pred func(n int) bool) *Primitive {
		return &Primitive{
			Qualified: "Prelude." + name, Arity: 2, Category: CategoryOrdering,
			Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
				a, err := AsNumber(span, "Prelude."+name, args[0])
				if err != nil {
					return nil, err
				}
				b, err := AsNumber(span, "Prelude."+name, args[1])
				if err != nil {
					return nil, err
				}
				n := 0
				switch {
				case a < b:
					n = -1
				case a > b:
					n = 1
				}
				return value.Bool(pred(n)), nil
			},
		}
	}

	r.Register(cmp("lessThan", func(n int) bool { return n < 0 }))
	r.Register(cmp("lessThanOrEqual", func(n int) bool { return n <= 0 }))
	r.Register(cmp("greaterThan", func(n int) bool { return n > 0 }))
	r.Register(cmp("greaterThanOrEqual", func(n int) bool { return n >= 0 }))
}
