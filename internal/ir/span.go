// Package ir defines the compiled intermediate representation consumed by
// the evaluator: a small lambda calculus with data constructors, case
// expressions, let/letrec, record literals, and source annotations.
package ir

import "fmt"

// Span is a source location range, carried on every IR node for diagnostics.
type Span struct {
	File      string
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// String renders a span as "file:line:col-line:col".
func (s *Span) String() string {
	if s == nil {
		return ""
	}
	return fmt.Sprintf("%s:%d:%d-%d:%d", s.File, s.StartLine, s.StartCol, s.EndLine, s.EndCol)
}
