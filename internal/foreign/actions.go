package foreign

import (
	"github.com/webltl/specverify/internal/ir"
	"github.com/webltl/specverify/internal/value"
)

// ActionKind names one of the four action shapes the marshalling
// layer recognizes, per §4.G: "action constructors (Focus|KeyPress|
// Click|Navigate tagged objects)". These are the native-side shape of
// the values the `actions` entry point (§6) returns to the host action
// generator.
type ActionKind string

const (
	ActionFocus    ActionKind = "Focus"
	ActionKeyPress ActionKind = "KeyPress"
	ActionClick    ActionKind = "Click"
	ActionNavigate ActionKind = "Navigate"
)

func taggedAction(kind ActionKind, fields []string, vals []value.Value) *value.Object {
	keys := append([]string{"constructor"}, fields...)
	allVals := append([]value.Value{value.String(kind)}, vals...)
	return value.NewObject(keys, allVals)
}

// RegisterActions installs the constructors the `actions` entry point
// calls to build tagged action objects, grounded on the teacher's
// internal/interp/adapter_objects.go approach to building canonical
// tagged-object values from foreign calls.
func RegisterActions(r *Registry) {
	r.Register(&Primitive{
		Qualified: "Prelude.focus", Arity: 1, Category: CategoryAction,
		Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
			selector, err := AsString(span, "Prelude.focus", args[0])
			if err != nil {
				return nil, err
			}
			return taggedAction(ActionFocus, []string{"selector"}, []value.Value{value.String(selector)}), nil
		},
	})

	r.Register(&Primitive{
		Qualified: "Prelude.keyPress", Arity: 2, Category: CategoryAction,
		Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
			selector, err := AsString(span, "Prelude.keyPress", args[0])
			if err != nil {
				return nil, err
			}
			key, err := AsString(span, "Prelude.keyPress", args[1])
			if err != nil {
				return nil, err
			}
			return taggedAction(ActionKeyPress, []string{"selector", "key"},
				[]value.Value{value.String(selector), value.String(key)}), nil
		},
	})

	r.Register(&Primitive{
		Qualified: "Prelude.click", Arity: 1, Category: CategoryAction,
		Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
			selector, err := AsString(span, "Prelude.click", args[0])
			if err != nil {
				return nil, err
			}
			return taggedAction(ActionClick, []string{"selector"}, []value.Value{value.String(selector)}), nil
		},
	})

	r.Register(&Primitive{
		Qualified: "Prelude.navigate", Arity: 1, Category: CategoryAction,
		Invoke: func(c Caller, span *ir.Span, args []value.Value) (value.Value, error) {
			url, err := AsString(span, "Prelude.navigate", args[0])
			if err != nil {
				return nil, err
			}
			return taggedAction(ActionNavigate, []string{"url"}, []value.Value{value.String(url)}), nil
		},
	})
}
