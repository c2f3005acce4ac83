// Package match implements the pattern matcher (§4.C): a pure, total
// function deciding whether a binder matches a value and, if so, what
// bindings it produces. It never raises; failure is reported as a
// boolean, mirroring the teacher's field-presence/equality helpers in
// internal/interp/helpers_comparison.go and objects_properties.go.
package match

import (
	"github.com/webltl/specverify/internal/ir"
	"github.com/webltl/specverify/internal/value"
)

// Match attempts to match binder against v. On success it returns the
// bindings introduced (as name -> Value pairs) and true; on failure it
// returns (nil, false).
func Match(binder *ir.Binder, v value.Value) (map[string]value.Value, bool) {
	out := map[string]value.Value{}
	if matchInto(binder, v, out) {
		return out, true
	}
	return nil, false
}

// MatchAll matches a list of binders against a parallel list of
// values (used for Case's multi-scrutinee alternatives), merging
// bindings from each successful binder.
func MatchAll(binders []*ir.Binder, vals []value.Value) (map[string]value.Value, bool) {
	out := map[string]value.Value{}
	for i, b := range binders {
		if !matchInto(b, vals[i], out) {
			return nil, false
		}
	}
	return out, true
}

func matchInto(b *ir.Binder, v value.Value, out map[string]value.Value) bool {
	switch b.Kind {
	case ir.BindWildcard:
		return true

	case ir.BindLiteral:
		return matchLiteral(b.Literal, v)

	case ir.BindVariable:
		out[b.Name] = v
		return true

	case ir.BindNamed:
		if !matchInto(b.Inner, v, out) {
			return false
		}
		out[b.Name] = v
		return true

	case ir.BindArray:
		arr, ok := v.(value.Array)
		if !ok || len(b.Elements) > len(arr) {
			return false
		}
		for i, eb := range b.Elements {
			if !matchInto(eb, arr[i], out) {
				return false
			}
		}
		return true

	case ir.BindObject:
		obj, ok := v.(*value.Object)
		if !ok {
			return false
		}
		for _, fb := range b.Fields {
			fv, present := obj.Get(fb.Key)
			if !present {
				return false
			}
			if !matchInto(fb.Binder, fv, out) {
				return false
			}
		}
		return true

	case ir.BindConstructor:
		if b.IsNewtype {
			if len(b.CtorBinders) != 1 {
				return false
			}
			return matchInto(b.CtorBinders[0], v, out)
		}
		obj, ok := v.(*value.Object)
		if !ok {
			return false
		}
		ctorVal, present := obj.Get("constructor")
		if !present {
			return false
		}
		ctorStr, ok := ctorVal.(value.String)
		if !ok || string(ctorStr) != b.CtorName {
			return false
		}
		fieldsVal, present := obj.Get("fields")
		if !present {
			return false
		}
		fields, ok := fieldsVal.(value.Array)
		if !ok || len(fields) != len(b.CtorBinders) {
			return false
		}
		for i, fb := range b.CtorBinders {
			if !matchInto(fb, fields[i], out) {
				return false
			}
		}
		return true

	default:
		return false
	}
}

func matchLiteral(lit *ir.Literal, v value.Value) bool {
	switch lit.Kind {
	case ir.LitBool:
		bv, ok := v.(value.Bool)
		return ok && bool(bv) == lit.BoolValue
	case ir.LitInt:
		switch vv := v.(type) {
		case value.Int:
			return int64(vv) == lit.IntValue
		case value.Number:
			return float64(vv) == float64(lit.IntValue)
		}
		return false
	case ir.LitNumber:
		nv, ok := v.(value.Number)
		return ok && float64(nv) == lit.NumberValue
	case ir.LitChar:
		cv, ok := v.(value.Char)
		return ok && rune(cv) == lit.CharValue
	case ir.LitString:
		sv, ok := v.(value.String)
		return ok && string(sv) == lit.StringValue
	default:
		return false
	}
}
