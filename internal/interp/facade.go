package interp

import (
	ierrors "github.com/webltl/specverify/internal/errors"
	"github.com/webltl/specverify/internal/value"
)

// Verdict is the result of verifying a proposition against a trace
// (§4.H).
type Verdict int

const (
	Accepted Verdict = iota
	Rejected
	Undetermined
)

func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "Accepted"
	case Rejected:
		return "Rejected"
	case Undetermined:
		return "Undetermined"
	default:
		return "Unknown"
	}
}

func newEntryPointNotDefined(qualified string) error {
	return ierrors.NewEntryPointNotDefined(qualified)
}

// Verify resolves the `proposition` entry point against trace and
// maps the result to a Verdict (§4.H): Bool(true) -> Accepted,
// Bool(false) -> Rejected, an Undetermined error -> Undetermined, any
// other error is returned for the caller to render with
// errors.Format.
func (p *Program) Verify(trace Trace) (Verdict, error) {
	qualified := p.ModuleName + ".proposition"
	b, ok := p.Env.Lookup(qualified)
	if !ok {
		return Undetermined, newEntryPointNotDefined(qualified)
	}

	var result value.Value
	var err error
	if d, ok := b.Value.(*value.Defer); ok {
		result, err = p.Interp.EvalProposition(d.Expr, d.Env, trace)
	} else {
		result = b.Value
	}
	if err != nil {
		if ierrors.Is(err, ierrors.Undetermined) {
			return Undetermined, nil
		}
		return Undetermined, err
	}

	bv, ok := result.(value.Bool)
	if !ok {
		return Undetermined, unexpectedType(nil, "VBool", result)
	}
	if bool(bv) {
		return Accepted, nil
	}
	return Rejected, nil
}
