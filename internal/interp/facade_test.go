package interp

import (
	"testing"

	ierrors "github.com/webltl/specverify/internal/errors"
	"github.com/webltl/specverify/internal/ir"
)

// TestVerifyAcceptsTrivialTrue verifies end-to-end scenario S1: a
// module whose `proposition` binding is the literal `true` is
// Accepted regardless of the trace.
func TestVerifyAcceptsTrivialTrue(t *testing.T) {
	bindings := []ir.Binding{{Name: "proposition", Rhs: boolLit(true)}}
	program := NewProgram("Spec", bindings, New())

	verdict, err := program.Verify(NewTrace([]ObservedState{{}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict != Accepted {
		t.Errorf("verdict = %v, want Accepted", verdict)
	}
}

// TestVerifyRejectsTrivialFalse mirrors S1 with the opposite boolean.
func TestVerifyRejectsTrivialFalse(t *testing.T) {
	bindings := []ir.Binding{{Name: "proposition", Rhs: boolLit(false)}}
	program := NewProgram("Spec", bindings, New())

	verdict, err := program.Verify(NewTrace([]ObservedState{{}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict != Rejected {
		t.Errorf("verdict = %v, want Rejected", verdict)
	}
}

// TestVerifyNextOnSingleStateTraceIsUndetermined verifies end-to-end
// scenario S4 in reduced form: `next (_property "value")` (S4's
// comparison against "x" left out, since it never runs) on a one-state
// trace drains it to empty before the inner form runs, yielding
// Undetermined with no error returned to the caller.
func TestVerifyNextOnSingleStateTraceIsUndetermined(t *testing.T) {
	inner := apply(&ir.Variable{Name: "_property"}, strLit("value"))
	bindings := []ir.Binding{{Name: "proposition", Rhs: nextOf(inner)}}
	program := NewProgram("Spec", bindings, New())

	verdict, err := program.Verify(NewTrace([]ObservedState{{}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict != Undetermined {
		t.Errorf("verdict = %v, want Undetermined", verdict)
	}
}

// TestVerifyPropagatesNotInScopeWithSpan verifies end-to-end scenario
// S5: an unbound reference in the proposition surfaces as a
// NotInScope error carrying its source span, not collapsed into a
// Verdict.
func TestVerifyPropagatesNotInScopeWithSpan(t *testing.T) {
	span := &ir.Span{File: "spec.dsl", StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 4}
	ref := &ir.Variable{Annotation: ir.Annotation{Span: span}, Name: "undefinedThing"}
	bindings := []ir.Binding{{Name: "proposition", Rhs: ref}}
	program := NewProgram("Spec", bindings, New())

	_, err := program.Verify(NewTrace([]ObservedState{{}}))
	ee, ok := err.(*ierrors.EvalError)
	if !ok || ee.EKind != ierrors.NotInScope {
		t.Fatalf("expected NotInScope, got %v", err)
	}
	if ee.Span != span {
		t.Error("expected the reference's own span to be preserved")
	}
}

// TestVerifyMissingPropositionFailsEntryPointNotDefined verifies a
// module with no `proposition` binding reports EntryPointNotDefined
// rather than panicking.
func TestVerifyMissingPropositionFailsEntryPointNotDefined(t *testing.T) {
	program := NewProgram("Spec", nil, New())
	_, err := program.Verify(NewTrace([]ObservedState{{}}))
	ee, ok := err.(*ierrors.EvalError)
	if !ok || ee.EKind != ierrors.EntryPointNotDefined {
		t.Fatalf("expected EntryPointNotDefined, got %v", err)
	}
}

// TestOriginReadyWhenActions verifies the non-temporal entry points
// resolve against the single pseudo-state trace (§4.H).
func TestOriginReadyWhenActions(t *testing.T) {
	bindings := []ir.Binding{
		{Name: "origin", Rhs: strLit("https://example.com/form")},
		{Name: "readyWhen", Rhs: strLit("#form")},
		{Name: "actions", Rhs: &ir.Literal{Kind: ir.LitArray, Elements: []ir.Expr{strLit("click")}}},
	}
	program := NewProgram("Spec", bindings, New())

	origin, err := program.Origin()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if origin != "https://example.com/form" {
		t.Errorf("origin = %q, want https://example.com/form", origin)
	}

	readyWhen, err := program.ReadyWhen()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if readyWhen != "#form" {
		t.Errorf("readyWhen = %q, want #form", readyWhen)
	}

	actions, err := program.Actions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(actions) != 1 {
		t.Fatalf("expected one action, got %v", actions)
	}
}

// TestExtractQueriesReturnsNil verifies the deliberately unimplemented
// static pre-pass stays a no-op rather than guessing at behavior.
func TestExtractQueriesReturnsNil(t *testing.T) {
	program := NewProgram("Spec", nil, New())
	if got := program.ExtractQueries(); got != nil {
		t.Errorf("ExtractQueries() = %v, want nil", got)
	}
}

// TestProgramBindingsAreMutuallyRecursive verifies module-level
// bindings may refer to one another regardless of textual order
// (§4.H), mirroring evalLet's recursive-group construction.
func TestProgramBindingsAreMutuallyRecursive(t *testing.T) {
	bindings := []ir.Binding{
		{Name: "proposition", Rhs: &ir.Variable{Name: "Spec.helper"}},
		{Name: "helper", Rhs: boolLit(true)},
	}
	program := NewProgram("Spec", bindings, New())

	verdict, err := program.Verify(NewTrace([]ObservedState{{}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict != Accepted {
		t.Errorf("verdict = %v, want Accepted", verdict)
	}
}
