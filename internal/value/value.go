// Package value implements the tagged value universe (§3, §4.A) and the
// layered binding environment (§4.B) that the evaluator operates over.
package value

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/webltl/specverify/internal/ir"
)

// Kind discriminates the Value variants.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindNumber
	KindChar
	KindString
	KindArray
	KindObject
	KindFunction
	KindDefer
	KindElementState
)

// Value is any member of the tagged value universe. All variants are
// immutable once constructed.
type Value interface {
	Kind() Kind
	String() string
}

// Bool is a boolean value.
type Bool bool

func (Bool) Kind() Kind { return KindBool }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Int is a 64-bit signed integer value.
type Int int64

func (Int) Kind() Kind        { return KindInt }
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// Number is a 64-bit IEEE-754 floating point value.
type Number float64

func (Number) Kind() Kind { return KindNumber }
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// Char is a single Unicode scalar value.
type Char rune

func (Char) Kind() Kind        { return KindChar }
func (c Char) String() string { return string(rune(c)) }

// String is decoded text.
type String string

func (String) Kind() Kind        { return KindString }
func (s String) String() string { return string(s) }

// Array is an ordered, immutable sequence of values.
type Array []Value

func (Array) Kind() Kind { return KindArray }
func (a Array) String() string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// objectEntry is one key/value pair of an Object, kept in insertion
// order so that pretty-printing and record-update are deterministic.
type objectEntry struct {
	Key   string
	Value Value
}

// Object is an immutable text-keyed mapping with unique keys. Iteration
// order is insertion order; it is not semantically significant except
// that ObjectUpdate preserves the order of existing keys and appends
// new ones.
type Object struct {
	entries []objectEntry
	index   map[string]int
}

func (*Object) Kind() Kind { return KindObject }

// NewObject builds an Object from ordered key/value pairs. Later
// duplicate keys overwrite earlier ones in place (keeping the earlier
// position), matching record-literal construction semantics.
func NewObject(keys []string, vals []Value) *Object {
	o := &Object{index: make(map[string]int, len(keys))}
	for i, k := range keys {
		o.set(k, vals[i])
	}
	return o
}

func EmptyObject() *Object { return &Object{index: map[string]int{}} }

func (o *Object) set(key string, val Value) {
	if idx, ok := o.index[key]; ok {
		o.entries[idx].Value = val
		return
	}
	o.index[key] = len(o.entries)
	o.entries = append(o.entries, objectEntry{Key: key, Value: val})
}

// Get looks up a field by name.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	idx, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.entries[idx].Value, true
}

// Keys returns field names in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.entries))
	for i, e := range o.entries {
		keys[i] = e.Key
	}
	return keys
}

// Update returns a new Object with the named fields replaced or added,
// preserving the position of existing keys and appending new ones in
// the order given (spec §4.D, property "Record update").
func (o *Object) Update(keys []string, vals []Value) *Object {
	out := &Object{
		entries: make([]objectEntry, len(o.entries)),
		index:   make(map[string]int, len(o.index)),
	}
	copy(out.entries, o.entries)
	for k, i := range o.index {
		out.index[k] = i
	}
	for i, k := range keys {
		out.set(k, vals[i])
	}
	return out
}

func (o *Object) String() string {
	keys := make([]string, len(o.entries))
	copy(keys, o.Keys())
	sort.Strings(keys) // deterministic rendering only; does not affect semantics
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v, _ := o.Get(k)
		parts = append(parts, fmt.Sprintf("%s: %s", k, v.String()))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Function is a closure: the environment visible at its definition
// site, its single parameter name, and its unevaluated body.
type Function struct {
	Env   *Env
	Param string
	Body  ir.Expr

	// Native, when non-nil, makes this a native step of a curried data
	// constructor instead of an IR closure: applying the function calls
	// Native directly rather than evaluating Body. Used by data
	// constructors (§4.D), whose curried-lambda-chain shape is built by
	// the evaluator rather than compiled IR.
	Native func(arg Value) Value
}

func (*Function) Kind() Kind { return KindFunction }
func (f *Function) String() string {
	if f.Native != nil {
		return "<constructor>"
	}
	return fmt.Sprintf("<function %s>", f.Param)
}

// Defer is a not-yet-evaluated expression paired with the environment
// it must be evaluated in; used for letrec and module-level bindings.
type Defer struct {
	Env  *Env
	Expr ir.Expr
}

func (*Defer) Kind() Kind        { return KindDefer }
func (*Defer) String() string    { return "<deferred>" }

// ElementStateKind names the kind of DOM state an ElementState selects.
type ElementStateKind int

const (
	StateProperty ElementStateKind = iota
	StateAttribute
	StateCssValue
	StateText
	StateEnabled
)

// ElementState is an opaque selector into an observed DOM element's
// recorded state, resolved by the query resolver (§4.F).
type ElementState struct {
	StateKind ElementStateKind
	Name      string // empty for Text/Enabled
}

func (*ElementState) Kind() Kind { return KindElementState }
func (e *ElementState) String() string {
	switch e.StateKind {
	case StateProperty:
		return fmt.Sprintf("<property %s>", e.Name)
	case StateAttribute:
		return fmt.Sprintf("<attribute %s>", e.Name)
	case StateCssValue:
		return fmt.Sprintf("<cssValue %s>", e.Name)
	case StateText:
		return "<text>"
	case StateEnabled:
		return "<enabled>"
	default:
		return "<elementState>"
	}
}

// StructuralEqual reports whether a and b are equal under the
// source language's structural equality: primitives compare by value,
// arrays and objects recurse; Function, Defer, and ElementState have
// no user-visible equality (always false, even with themselves) per §4.A.
func StructuralEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Bool:
		return av == b.(Bool)
	case Int:
		return av == b.(Int)
	case Number:
		return av == b.(Number)
	case Char:
		return av == b.(Char)
	case String:
		return av == b.(String)
	case Array:
		bv := b.(Array)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !StructuralEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv := b.(*Object)
		if len(av.entries) != len(bv.entries) {
			return false
		}
		for _, e := range av.entries {
			ov, ok := bv.Get(e.Key)
			if !ok || !StructuralEqual(e.Value, ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
