// Package loader implements the external loader (§6 "Inputs"): it
// parses on-disk JSON artifacts for the observed-state trace and the
// compiled IR module set into the evaluator's in-memory form. The
// evaluator itself never touches JSON or the filesystem; loading is
// entirely external to it, per §6.
//
// IR expression JSON is a tagged union (one "kind" string per node
// type) rather than a fixed schema, so parsing leans on
// github.com/tidwall/gjson's untyped traversal instead of
// encoding/json struct tags, the same way the teacher's
// json_conversion.go walks untyped decoded JSON by hand rather than
// unmarshalling into a fixed Go type.
package loader

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/webltl/specverify/internal/interp"
	"github.com/webltl/specverify/internal/value"
)

// LoadTrace parses an on-disk observed-state trace artifact (§6): a
// JSON array of objects, each mapping a CSS selector to an array of
// per-element recorded state.
func LoadTrace(data []byte) (interp.Trace, error) {
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("trace JSON must be an array of observed states")
	}

	var states []interp.ObservedState
	var parseErr error
	root.ForEach(func(_, stateJSON gjson.Result) bool {
		state, err := parseObservedState(stateJSON)
		if err != nil {
			parseErr = err
			return false
		}
		states = append(states, state)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return interp.NewTrace(states), nil
}

func parseObservedState(stateJSON gjson.Result) (interp.ObservedState, error) {
	if !stateJSON.IsObject() {
		return nil, fmt.Errorf("observed state must be a JSON object")
	}
	out := interp.ObservedState{}
	var parseErr error
	stateJSON.ForEach(func(selKey, elemsJSON gjson.Result) bool {
		selector := selKey.String()
		if !elemsJSON.IsArray() {
			parseErr = fmt.Errorf("selector %q must map to an array of elements", selector)
			return false
		}
		var elements []interp.ObservedElement
		elemsJSON.ForEach(func(_, elemJSON gjson.Result) bool {
			elem, err := parseObservedElement(elemJSON)
			if err != nil {
				parseErr = err
				return false
			}
			elements = append(elements, elem)
			return true
		})
		if parseErr != nil {
			return false
		}
		out[selector] = elements
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return out, nil
}

func parseObservedElement(elemJSON gjson.Result) (interp.ObservedElement, error) {
	if !elemJSON.IsObject() {
		return nil, fmt.Errorf("observed element must be a JSON object")
	}
	out := interp.ObservedElement{}
	var parseErr error
	elemJSON.ForEach(func(keyJSON, valJSON gjson.Result) bool {
		key, err := parseElementKey(keyJSON.String())
		if err != nil {
			parseErr = err
			return false
		}
		out[key] = valJSON.Value()
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return out, nil
}

// parseElementKey decodes the wire form of an ElementKey: bare "text"
// or "enabled", or "kind:name" for the named variants (e.g.
// "attribute:display").
func parseElementKey(raw string) (interp.ElementKey, error) {
	switch raw {
	case "text":
		return interp.ElementKey{Kind: value.StateText}, nil
	case "enabled":
		return interp.ElementKey{Kind: value.StateEnabled}, nil
	}
	kind, name, found := strings.Cut(raw, ":")
	if !found {
		return interp.ElementKey{}, fmt.Errorf("malformed element-state key %q", raw)
	}
	switch kind {
	case "property":
		return interp.ElementKey{Kind: value.StateProperty, Name: name}, nil
	case "attribute":
		return interp.ElementKey{Kind: value.StateAttribute, Name: name}, nil
	case "cssValue":
		return interp.ElementKey{Kind: value.StateCssValue, Name: name}, nil
	}
	return interp.ElementKey{}, fmt.Errorf("unknown element-state kind %q", kind)
}
