package foreign

import (
	"strings"

	"github.com/webltl/specverify/internal/ir"
	"github.com/webltl/specverify/internal/value"
)

// RegisterStrings installs string primitives, grounded on the
// teacher's internal/interp/builtins/strings_basic.go category.
func RegisterStrings(r *Registry) {
	r.Register(&Primitive{
		Qualified: "Prelude.stringLength", Arity: 1, Category: CategoryString,
		Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
			s, err := AsString(span, "Prelude.stringLength", args[0])
			if err != nil {
				return nil, err
			}
			return value.Int(len([]rune(s))), nil
		},
	})

	r.Register(&Primitive{
		Qualified: "Prelude.stringConcat", Arity: 2, Category: CategoryString,
		Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
			a, err := AsString(span, "Prelude.stringConcat", args[0])
			if err != nil {
				return nil, err
			}
			b, err := AsString(span, "Prelude.stringConcat", args[1])
			if err != nil {
				return nil, err
			}
			return value.String(a + b), nil
		},
	})

	r.Register(&Primitive{
		Qualified: "Prelude.stringToUpper", Arity: 1, Category: CategoryString,
		Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
			s, err := AsString(span, "Prelude.stringToUpper", args[0])
			if err != nil {
				return nil, err
			}
			return value.String(strings.ToUpper(s)), nil
		},
	})

	r.Register(&Primitive{
		Qualified: "Prelude.stringContains", Arity: 2, Category: CategoryString,
		Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
			s, err := AsString(span, "Prelude.stringContains", args[0])
			if err != nil {
				return nil, err
			}
			sub, err := AsString(span, "Prelude.stringContains", args[1])
			if err != nil {
				return nil, err
			}
			return value.Bool(strings.Contains(s, sub)), nil
		},
	})

	r.Register(&Primitive{
		Qualified: "Prelude.stringSplit", Arity: 2, Category: CategoryString,
		Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
			s, err := AsString(span, "Prelude.stringSplit", args[0])
			if err != nil {
				return nil, err
			}
			sep, err := AsString(span, "Prelude.stringSplit", args[1])
			if err != nil {
				return nil, err
			}
			parts := strings.Split(s, sep)
			out := make(value.Array, len(parts))
			for i, p := range parts {
				out[i] = value.String(p)
			}
			return out, nil
		},
	})
}
