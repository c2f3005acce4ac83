package value

import "testing"

// TestObjectUpdatePreservesOrder verifies record update keeps existing
// key positions and appends new keys (testable property "Record
// update").
func TestObjectUpdatePreservesOrder(t *testing.T) {
	obj := NewObject([]string{"a", "b"}, []Value{Int(1), Int(2)})
	updated := obj.Update([]string{"b", "c"}, []Value{Int(3), Int(4)})

	if got := updated.Keys(); len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected key order: %v", got)
	}

	cases := map[string]int64{"a": 1, "b": 3, "c": 4}
	for k, want := range cases {
		v, ok := updated.Get(k)
		if !ok {
			t.Fatalf("key %q missing after update", k)
		}
		if int64(v.(Int)) != want {
			t.Errorf("key %q = %v, want %d", k, v, want)
		}
	}

	// The original object must be unaffected.
	if _, ok := obj.Get("c"); ok {
		t.Error("Update mutated the original object")
	}
}

// TestStructuralEqualPrimitives checks primitive and container
// structural equality.
func TestStructuralEqualPrimitives(t *testing.T) {
	if !StructuralEqual(Int(1), Int(1)) {
		t.Error("Int(1) should equal Int(1)")
	}
	if StructuralEqual(Int(1), Int(2)) {
		t.Error("Int(1) should not equal Int(2)")
	}
	if StructuralEqual(Int(1), Number(1)) {
		t.Error("Int and Number should never be structurally equal (different Kind)")
	}

	a := Array{Int(1), String("x")}
	b := Array{Int(1), String("x")}
	if !StructuralEqual(a, b) {
		t.Error("equal arrays should be structurally equal")
	}

	oa := NewObject([]string{"k"}, []Value{Bool(true)})
	ob := NewObject([]string{"k"}, []Value{Bool(true)})
	if !StructuralEqual(oa, ob) {
		t.Error("equal objects should be structurally equal")
	}
}

// TestStructuralEqualNeverEqualFunctionLike verifies Function, Defer,
// and ElementState have no user-visible equality, even with
// themselves (§4.A).
func TestStructuralEqualNeverEqualFunctionLike(t *testing.T) {
	fn := &Function{Param: "x"}
	if StructuralEqual(fn, fn) {
		t.Error("Function must never compare equal, even to itself")
	}

	d := &Defer{}
	if StructuralEqual(d, d) {
		t.Error("Defer must never compare equal, even to itself")
	}

	es := &ElementState{StateKind: StateText}
	if StructuralEqual(es, es) {
		t.Error("ElementState must never compare equal, even to itself")
	}
}

// TestFunctionNativeString verifies a native constructor step renders
// distinctly from an ordinary closure.
func TestFunctionNativeString(t *testing.T) {
	native := &Function{Native: func(arg Value) Value { return arg }}
	if native.String() != "<constructor>" {
		t.Errorf("native function String() = %q, want <constructor>", native.String())
	}

	closure := &Function{Param: "x"}
	if closure.String() != "<function x>" {
		t.Errorf("closure String() = %q, want <function x>", closure.String())
	}
}
