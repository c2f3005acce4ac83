package match

import (
	"testing"

	"github.com/webltl/specverify/internal/ir"
	"github.com/webltl/specverify/internal/value"
)

// TestMatchWildcard verifies a wildcard always matches and binds
// nothing.
func TestMatchWildcard(t *testing.T) {
	bindings, ok := Match(&ir.Binder{Kind: ir.BindWildcard}, value.Int(42))
	if !ok {
		t.Fatal("wildcard should always match")
	}
	if len(bindings) != 0 {
		t.Errorf("wildcard should bind nothing, got %v", bindings)
	}
}

// TestMatchVariableBinds verifies a variable binder always matches and
// binds the scrutinee under its name.
func TestMatchVariableBinds(t *testing.T) {
	bindings, ok := Match(&ir.Binder{Kind: ir.BindVariable, Name: "x"}, value.Int(7))
	if !ok {
		t.Fatal("variable binder should always match")
	}
	if bindings["x"] != value.Int(7) {
		t.Errorf("expected x bound to 7, got %v", bindings["x"])
	}
}

// TestMatchLiteral verifies literal binders compare by value and
// reject mismatches.
func TestMatchLiteral(t *testing.T) {
	b := &ir.Binder{Kind: ir.BindLiteral, Literal: &ir.Literal{Kind: ir.LitBool, BoolValue: true}}
	if _, ok := Match(b, value.Bool(true)); !ok {
		t.Error("matching literal should succeed")
	}
	if _, ok := Match(b, value.Bool(false)); ok {
		t.Error("mismatched literal should fail")
	}
}

// TestMatchArrayRequiresMinimumLength verifies an array binder matches
// only when the scrutinee has at least as many elements as binders.
func TestMatchArrayRequiresMinimumLength(t *testing.T) {
	b := &ir.Binder{Kind: ir.BindArray, Elements: []*ir.Binder{
		{Kind: ir.BindVariable, Name: "head"},
	}}
	if _, ok := Match(b, value.Array{value.Int(1), value.Int(2)}); !ok {
		t.Error("array binder shorter than the scrutinee should still match")
	}
	if _, ok := Match(b, value.Array{}); ok {
		t.Error("array binder longer than the scrutinee should fail")
	}
}

// TestMatchObjectRequiresAllFields verifies an object binder fails
// when a wanted key is absent.
func TestMatchObjectRequiresAllFields(t *testing.T) {
	b := &ir.Binder{Kind: ir.BindObject, Fields: []ir.FieldBinder{
		{Key: "a", Binder: &ir.Binder{Kind: ir.BindVariable, Name: "a"}},
	}}
	obj := value.NewObject([]string{"a", "b"}, []value.Value{value.Int(1), value.Int(2)})
	bindings, ok := Match(b, obj)
	if !ok || bindings["a"] != value.Int(1) {
		t.Fatal("object binder should match and bind present fields")
	}
	if _, ok := Match(b, value.EmptyObject()); ok {
		t.Error("object binder should fail when the wanted key is absent")
	}
}

// TestMatchNewtypeUnwraps verifies a newtype constructor binder
// unwraps transparently instead of checking a tagged-object shape
// (testable property "Newtype transparency").
func TestMatchNewtypeUnwraps(t *testing.T) {
	b := &ir.Binder{
		Kind:        ir.BindConstructor,
		IsNewtype:   true,
		CtorBinders: []*ir.Binder{{Kind: ir.BindVariable, Name: "inner"}},
	}
	bindings, ok := Match(b, value.Int(5))
	if !ok || bindings["inner"] != value.Int(5) {
		t.Fatalf("newtype binder should unwrap directly onto the scrutinee, got %v, %v", bindings, ok)
	}
}

// TestMatchConstructorChecksTagAndArity verifies a non-newtype
// constructor binder requires the tagged-object shape.
func TestMatchConstructorChecksTagAndArity(t *testing.T) {
	b := &ir.Binder{
		Kind:     ir.BindConstructor,
		CtorName: "Just",
		CtorBinders: []*ir.Binder{
			{Kind: ir.BindVariable, Name: "x"},
		},
	}
	tagged := value.NewObject([]string{"constructor", "fields"}, []value.Value{
		value.String("Just"), value.Array{value.Int(9)},
	})
	bindings, ok := Match(b, tagged)
	if !ok || bindings["x"] != value.Int(9) {
		t.Fatal("matching constructor should bind the field")
	}

	wrongTag := value.NewObject([]string{"constructor", "fields"}, []value.Value{
		value.String("Nothing"), value.Array{},
	})
	if _, ok := Match(b, wrongTag); ok {
		t.Error("mismatched constructor tag should fail")
	}
}

// TestMatchAllMergesBindings verifies MatchAll matches each scrutinee
// against its parallel binder, merging bindings from all of them.
func TestMatchAllMergesBindings(t *testing.T) {
	binders := []*ir.Binder{
		{Kind: ir.BindVariable, Name: "a"},
		{Kind: ir.BindVariable, Name: "b"},
	}
	bindings, ok := MatchAll(binders, []value.Value{value.Int(1), value.Int(2)})
	if !ok || bindings["a"] != value.Int(1) || bindings["b"] != value.Int(2) {
		t.Fatalf("MatchAll should merge bindings from every binder, got %v", bindings)
	}
}
