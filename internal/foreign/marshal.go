package foreign

import (
	"github.com/webltl/specverify/internal/errors"
	"github.com/webltl/specverify/internal/ir"
	"github.com/webltl/specverify/internal/value"
)

// The marshalling layer supports Bool, Int, Number, Char, String,
// Array<T>, Object<T>, action constructors, and callable (Function)
// values, per §4.G. Each As* helper is a "require" site in the sense
// of §7: a variant mismatch here is an UnexpectedType error naming the
// expected tag (VArray, VBool, ...) and the actual value, the same
// error kind the core evaluator raises at its own require sites
// (Application requiring a Function, etc.) — see testable property S6.

func AsBool(span *ir.Span, qualified string, v value.Value) (bool, error) {
	b, ok := v.(value.Bool)
	if !ok {
		return false, wrongType(span, "VBool", v)
	}
	return bool(b), nil
}

func AsInt(span *ir.Span, qualified string, v value.Value) (int64, error) {
	i, ok := v.(value.Int)
	if !ok {
		return 0, wrongType(span, "VInt", v)
	}
	return int64(i), nil
}

func AsNumber(span *ir.Span, qualified string, v value.Value) (float64, error) {
	switch n := v.(type) {
	case value.Number:
		return float64(n), nil
	case value.Int:
		return float64(n), nil
	}
	return 0, wrongType(span, "VNumber", v)
}

func AsChar(span *ir.Span, qualified string, v value.Value) (rune, error) {
	c, ok := v.(value.Char)
	if !ok {
		return 0, wrongType(span, "VChar", v)
	}
	return rune(c), nil
}

func AsString(span *ir.Span, qualified string, v value.Value) (string, error) {
	s, ok := v.(value.String)
	if !ok {
		return "", wrongType(span, "VString", v)
	}
	return string(s), nil
}

func AsArray(span *ir.Span, qualified string, v value.Value) (value.Array, error) {
	a, ok := v.(value.Array)
	if !ok {
		return nil, wrongType(span, "VArray", v)
	}
	return a, nil
}

func AsObject(span *ir.Span, qualified string, v value.Value) (*value.Object, error) {
	o, ok := v.(*value.Object)
	if !ok {
		return nil, wrongType(span, "VObject", v)
	}
	return o, nil
}

func AsFunction(span *ir.Span, qualified string, v value.Value) (*value.Function, error) {
	f, ok := v.(*value.Function)
	if !ok {
		return nil, wrongType(span, "VFunction", v)
	}
	return f, nil
}

func wrongType(span *ir.Span, expectedTag string, actual value.Value) error {
	return errors.NewUnexpectedType(span, expectedTag, actual)
}
