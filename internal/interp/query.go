package interp

import (
	"sort"

	ierrors "github.com/webltl/specverify/internal/errors"
	"github.com/webltl/specverify/internal/ir"
	"github.com/webltl/specverify/internal/value"
)

// evalQueryAll resolves `_queryAll(selector, wantedStates)` against the
// current observed state (§4.F). wantedStates evaluates to an Object
// whose field values are ElementState selectors; the result is an
// Array of one Object per matched element, each field lifted from the
// element's recorded JSON-shaped value.
func (i *Interpreter) evalQueryAll(selectorExpr, wantedExpr ir.Expr, span *ir.Span, env *value.Env, trace Trace) (value.Value, error) {
	selVal, err := i.Eval(selectorExpr, env, trace)
	if err != nil {
		return nil, err
	}
	selector, ok := selVal.(value.String)
	if !ok {
		return nil, unexpectedType(span, "VString", selVal)
	}

	wantedVal, err := i.Eval(wantedExpr, env, trace)
	if err != nil {
		return nil, err
	}
	wanted, ok := wantedVal.(*value.Object)
	if !ok {
		return nil, unexpectedType(span, "VObject", wantedVal)
	}

	head, ok := trace.Head()
	if !ok {
		return nil, ierrors.NewForeignFunctionError(span, "no observed state available for query")
	}
	elements, ok := head.State[string(selector)]
	if !ok {
		return nil, ierrors.NewForeignFunctionError(span, "selector not in observed state: %s", string(selector))
	}

	keys := wanted.Keys()
	results := make(value.Array, len(elements))
	for elemIdx, elem := range elements {
		vals := make([]value.Value, len(keys))
		for keyIdx, key := range keys {
			fieldVal, _ := wanted.Get(key)
			es, ok := fieldVal.(*value.ElementState)
			if !ok {
				return nil, unexpectedType(span, "VElementState", fieldVal)
			}
			recorded, ok := elem[ElementKey{Kind: es.StateKind, Name: es.Name}]
			if !ok {
				return nil, ierrors.NewForeignFunctionError(span,
					"element-state %s not recorded for selector %s", key, string(selector))
			}
			vals[keyIdx] = liftJSON(recorded)
		}
		results[elemIdx] = value.NewObject(keys, vals)
	}
	return results, nil
}

// liftJSON lifts an untyped JSON-shaped recorded value into the value
// universe (§4.F step 3): null becomes an empty Object, numbers lift
// to Int when integral and Number otherwise, and arrays/objects
// recurse.
func liftJSON(v interface{}) value.Value {
	switch tv := v.(type) {
	case nil:
		return value.EmptyObject()
	case bool:
		return value.Bool(tv)
	case string:
		return value.String(tv)
	case float64:
		if tv == float64(int64(tv)) {
			return value.Int(int64(tv))
		}
		return value.Number(tv)
	case int:
		return value.Int(int64(tv))
	case int64:
		return value.Int(tv)
	case []interface{}:
		arr := make(value.Array, len(tv))
		for i, el := range tv {
			arr[i] = liftJSON(el)
		}
		return arr
	case map[string]interface{}:
		keys := make([]string, 0, len(tv))
		for k := range tv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		vals := make([]value.Value, len(keys))
		for i, k := range keys {
			vals[i] = liftJSON(tv[k])
		}
		return value.NewObject(keys, vals)
	default:
		return value.EmptyObject()
	}
}
