package interp

import "github.com/tidwall/sjson"

// FormatDiagnosticJSON renders a `trace(label, p)` emission (§4.E) as a
// single JSON line, for the CLI's --diagnostics-json output. Built
// incrementally with sjson rather than a fixed struct, since a
// Diagnostic's Span is optionally nil and the "span" key is then simply
// never set, without a pointer-vs-omitempty dance.
func FormatDiagnosticJSON(d Diagnostic) (string, error) {
	out := "{}"
	var err error
	if out, err = sjson.Set(out, "index", d.Index); err != nil {
		return "", err
	}
	if out, err = sjson.Set(out, "label", d.Label); err != nil {
		return "", err
	}
	if d.Span != nil {
		if out, err = sjson.Set(out, "span", d.Span.String()); err != nil {
			return "", err
		}
	}
	return out, nil
}
