// Package errors implements the evaluator's error taxonomy (§7) and
// the pretty-printer that renders an error the way the specification
// façade surfaces it to the caller of verify (§6), generalized from
// the teacher's internal/errors.CompilerError formatting down to the
// two-line wire format this spec requires.
package errors

import (
	"fmt"

	"github.com/webltl/specverify/internal/ir"
)

// Kind enumerates the exhaustive error taxonomy of §7.
type Kind int

const (
	UnexpectedError Kind = iota
	UnexpectedType
	EntryPointNotDefined
	NotInScope
	ForeignFunctionNotSupported
	InvalidString
	InvalidBuiltInFunctionApplication
	ForeignFunctionError
	Undetermined
)

func (k Kind) String() string {
	switch k {
	case UnexpectedError:
		return "UnexpectedError"
	case UnexpectedType:
		return "UnexpectedType"
	case EntryPointNotDefined:
		return "EntryPointNotDefined"
	case NotInScope:
		return "NotInScope"
	case ForeignFunctionNotSupported:
		return "ForeignFunctionNotSupported"
	case InvalidString:
		return "InvalidString"
	case InvalidBuiltInFunctionApplication:
		return "InvalidBuiltInFunctionApplication"
	case ForeignFunctionError:
		return "ForeignFunctionError"
	case Undetermined:
		return "Undetermined"
	default:
		return "Error"
	}
}

// EvalError is the single error type produced by every package in the
// evaluator core. Span is nil when no source location is available
// (e.g. an internal invariant violation with no associated node).
type EvalError struct {
	EKind   Kind
	Span    *ir.Span
	Message string
}

func (e *EvalError) Error() string { return e.Message }

// Is reports whether err is an *EvalError of the given kind, so
// callers (notably the temporal driver's Undetermined-catching rule)
// can branch on error identity without string matching.
func Is(err error, kind Kind) bool {
	ee, ok := err.(*EvalError)
	return ok && ee.EKind == kind
}

func New(kind Kind, span *ir.Span, format string, args ...any) *EvalError {
	return &EvalError{EKind: kind, Span: span, Message: fmt.Sprintf(format, args...)}
}

func NewUnexpectedError(span *ir.Span, format string, args ...any) *EvalError {
	return New(UnexpectedError, span, format, args...)
}

func NewUnexpectedType(span *ir.Span, expectedTag string, actual interface{ String() string }) *EvalError {
	actualStr := "<nil>"
	if actual != nil {
		actualStr = actual.String()
	}
	return New(UnexpectedType, span, "expected %s, got %s", expectedTag, actualStr)
}

func NewEntryPointNotDefined(qname string) *EvalError {
	return New(EntryPointNotDefined, nil, "entry point not defined: %s", qname)
}

func NewNotInScope(span *ir.Span, qname string) *EvalError {
	return New(NotInScope, span, "not in scope: %s", qname)
}

func NewForeignFunctionNotSupported(span *ir.Span, qname string) *EvalError {
	return New(ForeignFunctionNotSupported, span, "foreign function not supported: %s", qname)
}

func NewInvalidString(span *ir.Span) *EvalError {
	return New(InvalidString, span, "invalid string literal")
}

func NewInvalidBuiltInFunctionApplication(span *ir.Span, fn, arg string) *EvalError {
	return New(InvalidBuiltInFunctionApplication, span, "invalid application of %s to %s", fn, arg)
}

func NewForeignFunctionError(span *ir.Span, format string, args ...any) *EvalError {
	return New(ForeignFunctionError, span, format, args...)
}

// NewUndetermined builds the sentinel Undetermined error (§4.E, §7).
func NewUndetermined() *EvalError {
	return &EvalError{EKind: Undetermined, Message: "undetermined"}
}

// Format renders an error in the façade's wire format (§6):
//
//	<file>:<line>:<col>-<line>:<col>:
//	error: <message>
//
// The span clause is omitted entirely when unavailable, leaving just
// "error: <message>".
func Format(err *EvalError) string {
	if err.Span == nil {
		return fmt.Sprintf("error: %s", err.Message)
	}
	return fmt.Sprintf("%s:\nerror: %s", err.Span.String(), err.Message)
}
