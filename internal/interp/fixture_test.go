package interp

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	ierrors "github.com/webltl/specverify/internal/errors"
	"github.com/webltl/specverify/internal/ir"
	"github.com/webltl/specverify/internal/value"
)

// foreignCall builds a Let binding each argExpr under a fresh name,
// then references a Variable carrying the ForeignApply metadata that
// invokes qualified over those bound names in order — the shape the
// loader/compiler produces for a saturated foreign call (§4.G).
func foreignCall(qualified string, argExprs ...ir.Expr) *ir.Let {
	names := make([]string, len(argExprs))
	bindings := make([]ir.Binding, len(argExprs))
	for i, e := range argExprs {
		names[i] = fmt.Sprintf("arg%d", i)
		bindings[i] = ir.Binding{Name: names[i], Rhs: e}
	}
	return &ir.Let{
		Groups: []ir.LetGroup{{Bindings: bindings}},
		Body: &ir.Variable{
			Name:       qualified,
			Annotation: ir.Annotation{Foreign: &ir.ForeignApply{Qualified: qualified, Params: names}},
		},
	}
}

func emptyObjectLit() *ir.Literal {
	return &ir.Literal{Kind: ir.LitObjectField}
}

func arrayOf(elems ...ir.Expr) *ir.Literal {
	return &ir.Literal{Kind: ir.LitArray, Elements: elems}
}

// TestFixtureS1TrivialTrueIsAccepted runs end-to-end scenario S1: a
// module whose proposition is the literal `true` is Accepted against
// a single-state trace.
func TestFixtureS1TrivialTrueIsAccepted(t *testing.T) {
	program := NewProgram("Spec", []ir.Binding{{Name: "proposition", Rhs: boolLit(true)}}, New())
	verdict, err := program.Verify(NewTrace([]ObservedState{{}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict != Accepted {
		t.Errorf("verdict = %v, want Accepted", verdict)
	}
	snaps.MatchSnapshot(t, "S1_verdict", verdict.String())
}

// TestFixtureS2AlwaysQueryAllOnMatchingTraceIsAccepted runs end-to-end
// scenario S2: `always (_queryAll "body" {} == [{}])` over a two-state
// trace where "body" matches one element in both states.
func TestFixtureS2AlwaysQueryAllOnMatchingTraceIsAccepted(t *testing.T) {
	query := queryAllForm(strLit("body"), emptyObjectLit())
	eq := foreignCall("Prelude.equal", query, arrayOf(emptyObjectLit()))
	program := NewProgram("Spec", []ir.Binding{{Name: "proposition", Rhs: alwaysOf(eq)}}, New())

	trace := NewTrace([]ObservedState{
		{"body": []ObservedElement{{}}},
		{"body": []ObservedElement{{}}},
	})
	verdict, err := program.Verify(trace)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict != Accepted {
		t.Errorf("verdict = %v, want Accepted", verdict)
	}
	snaps.MatchSnapshot(t, "S2_verdict", verdict.String())
}

// TestFixtureS3AlwaysQueryAllOnEmptyingTraceIsRejected runs end-to-end
// scenario S3: the same proposition as S2, but "body" stops matching
// any element in the second state, falsifying the conjunction.
func TestFixtureS3AlwaysQueryAllOnEmptyingTraceIsRejected(t *testing.T) {
	query := queryAllForm(strLit("body"), emptyObjectLit())
	eq := foreignCall("Prelude.equal", query, arrayOf(emptyObjectLit()))
	program := NewProgram("Spec", []ir.Binding{{Name: "proposition", Rhs: alwaysOf(eq)}}, New())

	trace := NewTrace([]ObservedState{
		{"body": []ObservedElement{{}}},
		{"body": []ObservedElement{}},
	})
	verdict, err := program.Verify(trace)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict != Rejected {
		t.Errorf("verdict = %v, want Rejected", verdict)
	}
	snaps.MatchSnapshot(t, "S3_verdict", verdict.String())
}

// TestFixtureS4NextOnSingleStateTraceIsUndetermined runs end-to-end
// scenario S4: `next (_property "value" == "x")` against a one-state
// trace drains the trace before the comparison runs.
func TestFixtureS4NextOnSingleStateTraceIsUndetermined(t *testing.T) {
	prop := apply(&ir.Variable{Name: "_property"}, strLit("value"))
	eq := foreignCall("Prelude.equal", prop, strLit("x"))
	program := NewProgram("Spec", []ir.Binding{{Name: "proposition", Rhs: nextOf(eq)}}, New())

	verdict, err := program.Verify(NewTrace([]ObservedState{{}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict != Undetermined {
		t.Errorf("verdict = %v, want Undetermined", verdict)
	}
	snaps.MatchSnapshot(t, "S4_verdict", verdict.String())
}

// TestFixtureS5UndefinedReferenceReportsNotInScopeWithSpan runs
// end-to-end scenario S5: a proposition referencing an undefined name
// surfaces NotInScope carrying the reference's source span.
func TestFixtureS5UndefinedReferenceReportsNotInScopeWithSpan(t *testing.T) {
	span := &ir.Span{File: "spec.dsl", StartLine: 4, StartCol: 16, EndLine: 4, EndCol: 19}
	ref := &ir.Variable{Annotation: ir.Annotation{Span: span}, Name: "foo"}
	program := NewProgram("Spec", []ir.Binding{{Name: "proposition", Rhs: ref}}, New())

	_, err := program.Verify(NewTrace([]ObservedState{{}}))
	ee, ok := err.(*ierrors.EvalError)
	if !ok || ee.EKind != ierrors.NotInScope {
		t.Fatalf("expected NotInScope, got %v", err)
	}
	snaps.MatchSnapshot(t, "S5_formatted_error", ierrors.Format(ee))
}

// TestFixtureS6ArrayBindNonArrayFirstArgumentReportsUnexpectedType
// runs end-to-end scenario S6: calling the foreign arrayBind with a
// non-array first argument fails UnexpectedType naming VArray.
func TestFixtureS6ArrayBindNonArrayFirstArgumentReportsUnexpectedType(t *testing.T) {
	identity := &ir.Lambda{Param: "x", Body: &ir.Variable{Name: "x"}}
	call := foreignCall("Prelude.arrayBind", intLit(1), identity)

	_, err := New().Eval(call, value.NewEnv(), nil)
	ee, ok := err.(*ierrors.EvalError)
	if !ok || ee.EKind != ierrors.UnexpectedType {
		t.Fatalf("expected UnexpectedType, got %v", err)
	}
	snaps.MatchSnapshot(t, "S6_error_message", ee.Message)
}
