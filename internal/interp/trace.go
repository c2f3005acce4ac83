package interp

import "github.com/webltl/specverify/internal/value"

// ElementKey identifies one recorded piece of state on a matched DOM
// element (§3 ObservedState), keyed by element-state kind plus name
// (name is unused — empty — for Text/Enabled).
type ElementKey struct {
	Kind value.ElementStateKind
	Name string
}

// ObservedElement is one matched element's recorded state.
type ObservedElement map[ElementKey]interface{}

// ObservedState maps a CSS selector to its ordered list of matched
// elements, as observed at one point in the trace (§3).
type ObservedState map[string][]ObservedElement

// TraceState pairs one observed state with its 1-indexed position in
// the original trace, for diagnostics (§3 "Trace... 1-indexed for
// diagnostics").
type TraceState struct {
	Index int
	State ObservedState
}

// Trace is a finite ordered sequence of observed states. It is never
// lengthened; the temporal driver only shortens it by dropping the
// head (§3 Invariants).
type Trace []TraceState

// NewTrace builds a 1-indexed Trace from a plain sequence of observed
// states.
func NewTrace(states []ObservedState) Trace {
	out := make(Trace, len(states))
	for i, s := range states {
		out[i] = TraceState{Index: i + 1, State: s}
	}
	return out
}

// Head returns the current observed state and true, or the zero value
// and false if the trace is empty.
func (t Trace) Head() (TraceState, bool) {
	if len(t) == 0 {
		return TraceState{}, false
	}
	return t[0], true
}

// Tail drops the current head, returning the shortened trace.
func (t Trace) Tail() Trace {
	if len(t) == 0 {
		return t
	}
	return t[1:]
}
