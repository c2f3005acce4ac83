package value

import "testing"

// TestEnvLookupMissing verifies looking up an unbound name reports
// false rather than panicking.
func TestEnvLookupMissing(t *testing.T) {
	env := NewEnv()
	if _, ok := env.Lookup("x"); ok {
		t.Error("expected lookup of unbound name to fail")
	}
	// A nil receiver must also be safe, since WithoutLocals / Union
	// build fresh Envs from possibly-nil inputs.
	var nilEnv *Env
	if _, ok := nilEnv.Lookup("x"); ok {
		t.Error("expected lookup on a nil Env to fail")
	}
}

// TestEnvBindShadowing verifies a later Bind of the same name shadows
// the earlier one without disturbing the older environment value.
func TestEnvBindShadowing(t *testing.T) {
	base := NewEnv().Bind("x", ValueBinding(Int(1)))
	shadowed := base.Bind("x", ValueBinding(Int(2)))

	b, ok := shadowed.Lookup("x")
	if !ok || b.Value.(Int) != 2 {
		t.Fatalf("shadowed environment should see the newer binding, got %v", b.Value)
	}
	b, ok = base.Lookup("x")
	if !ok || b.Value.(Int) != 1 {
		t.Fatalf("original environment must be unaffected by a later Bind, got %v", b.Value)
	}
}

// TestEnvBindAllMutualVisibility verifies BindAll installs a single
// frame so that bindings within it can see one another (mutual
// recursion, §4.B).
func TestEnvBindAllMutualVisibility(t *testing.T) {
	env := NewEnv().BindAll(map[string]Binding{
		"isEven": ValueBinding(Bool(true)),
		"isOdd":  ValueBinding(Bool(false)),
	})
	if _, ok := env.Lookup("isEven"); !ok {
		t.Error("isEven should be visible")
	}
	if _, ok := env.Lookup("isOdd"); !ok {
		t.Error("isOdd should be visible")
	}
}

// TestEnvUnionRightBiased verifies Union's bindings shadow the
// receiver's on overlapping names.
func TestEnvUnionRightBiased(t *testing.T) {
	left := NewEnv().Bind("x", ValueBinding(Int(1)))
	right := NewEnv().Bind("x", ValueBinding(Int(2)))

	merged := left.Union(right)
	b, ok := merged.Lookup("x")
	if !ok || b.Value.(Int) != 2 {
		t.Fatalf("Union should be right-biased, got %v", b.Value)
	}
}

// TestWithoutLocalsKeepsOnlyQualifiedNames verifies module-level
// re-entry cannot see call-site locals (§3 Invariants).
func TestWithoutLocalsKeepsOnlyQualifiedNames(t *testing.T) {
	env := NewEnv().
		Bind("Module.helper", ValueBinding(Int(10))).
		Bind("x", ValueBinding(Int(99)))

	flat := env.WithoutLocals()
	if _, ok := flat.Lookup("x"); ok {
		t.Error("WithoutLocals should hide local (unqualified) bindings")
	}
	b, ok := flat.Lookup("Module.helper")
	if !ok || b.Value.(Int) != 10 {
		t.Fatal("WithoutLocals should keep qualified module-level bindings")
	}
}
