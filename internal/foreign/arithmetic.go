package foreign

import (
	"github.com/webltl/specverify/internal/errors"
	"github.com/webltl/specverify/internal/ir"
	"github.com/webltl/specverify/internal/value"
)

// RegisterArithmetic installs numeric primitives, grounded on the
// teacher's internal/interp/builtins/math_basic.go category.
func RegisterArithmetic(r *Registry) {
	binNum := func(name string, op func(a, b float64) float64) *Primitive {
		return &Primitive{
			Qualified: "Prelude." + name,
			Arity:     2,
			Category:  CategoryArithmetic,
			Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
				if ai, aok := args[0].(value.Int); aok {
					if bi, bok := args[1].(value.Int); bok {
						return intOrNumber(op(float64(ai), float64(bi)), true), nil
					}
				}
				a, err := AsNumber(span, "Prelude."+name, args[0])
				if err != nil {
					return nil, err
				}
				b, err := AsNumber(span, "Prelude."+name, args[1])
				if err != nil {
					return nil, err
				}
				return value.Number(op(a, b)), nil
			},
		}
	}

	r.Register(binNum("add", func(a, b float64) float64 { return a + b }))
	r.Register(binNum("sub", func(a, b float64) float64 { return a - b }))
	r.Register(binNum("mul", func(a, b float64) float64 { return a * b }))

	r.Register(&Primitive{
		Qualified: "Prelude.div", Arity: 2, Category: CategoryArithmetic,
		Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
			a, err := AsNumber(span, "Prelude.div", args[0])
			if err != nil {
				return nil, err
			}
			b, err := AsNumber(span, "Prelude.div", args[1])
			if err != nil {
				return nil, err
			}
			if b == 0 {
				return nil, errors.NewForeignFunctionError(span, "division by zero")
			}
			return value.Number(a / b), nil
		},
	})

	r.Register(&Primitive{
		Qualified: "Prelude.negate", Arity: 1, Category: CategoryArithmetic,
		Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
			if i, ok := args[0].(value.Int); ok {
				return value.Int(-i), nil
			}
			n, err := AsNumber(span, "Prelude.negate", args[0])
			if err != nil {
				return nil, err
			}
			return value.Number(-n), nil
		},
	})

	r.Register(&Primitive{
		Qualified: "Prelude.abs", Arity: 1, Category: CategoryArithmetic,
		Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
			if i, ok := args[0].(value.Int); ok {
				if i < 0 {
					i = -i
				}
				return i, nil
			}
			n, err := AsNumber(span, "Prelude.abs", args[0])
			if err != nil {
				return nil, err
			}
			if n < 0 {
				n = -n
			}
			return value.Number(n), nil
		},
	})
}

// intOrNumber returns Int when the operation's result is exact over
// integer operands, else Number. isIntPair indicates both operands
// were originally Int.
func intOrNumber(f float64, isIntPair bool) value.Value {
	if isIntPair && f == float64(int64(f)) {
		return value.Int(int64(f))
	}
	return value.Number(f)
}
