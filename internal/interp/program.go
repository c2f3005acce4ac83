package interp

import (
	"github.com/webltl/specverify/internal/ir"
	"github.com/webltl/specverify/internal/value"
)

// Program is one compiled user specification module, loaded into a
// fixed-point environment of its top-level bindings (§4.H). A single
// module is treated as one large mutually recursive group, the same
// construction evalLet uses for a recursive LetGroup, so top-level
// bindings may refer to one another regardless of textual order.
type Program struct {
	ModuleName string
	Env        *value.Env
	Interp     *Interpreter
}

// NewProgram builds the module-level environment: each top-level
// binding is a Defer under its qualified name (ModuleName.bindingName),
// captured against the completed module environment.
func NewProgram(moduleName string, bindings []ir.Binding, interp *Interpreter) *Program {
	frame := make(map[string]value.Binding, len(bindings))
	for _, b := range bindings {
		bCopy := b
		frame[moduleName+"."+bCopy.Name] = value.ValueBinding(&value.Defer{Expr: bCopy.Rhs})
	}
	env := value.NewEnv().BindAll(frame)
	for _, b := range bindings {
		qualified := moduleName + "." + b.Name
		if d, ok := frame[qualified].Value.(*value.Defer); ok {
			d.Env = env
		}
	}
	return &Program{ModuleName: moduleName, Env: env, Interp: interp}
}

// pseudoTrace is the single-element trace used to resolve non-temporal
// entry points (§4.H: "for non-temporal entries, [empty-state] is
// sufficient because these entries are expected to be pure values").
func pseudoTrace() Trace {
	return NewTrace([]ObservedState{{}})
}

func (p *Program) resolveEntry(name string) (value.Value, error) {
	qualified := p.ModuleName + "." + name
	b, ok := p.Env.Lookup(qualified)
	if !ok {
		return nil, newEntryPointNotDefined(qualified)
	}
	if d, ok := b.Value.(*value.Defer); ok {
		return p.Interp.Eval(d.Expr, d.Env, pseudoTrace())
	}
	return b.Value, nil
}

// Origin resolves the `origin` entry point: the URL or path the host
// navigator should load before observing the page (§6).
func (p *Program) Origin() (string, error) {
	v, err := p.resolveEntry("origin")
	if err != nil {
		return "", err
	}
	s, ok := v.(value.String)
	if !ok {
		return "", unexpectedType(nil, "VString", v)
	}
	return string(s), nil
}

// ReadyWhen resolves the `readyWhen` entry point: the selector the
// host readiness probe waits for (§6).
func (p *Program) ReadyWhen() (string, error) {
	v, err := p.resolveEntry("readyWhen")
	if err != nil {
		return "", err
	}
	s, ok := v.(value.String)
	if !ok {
		return "", unexpectedType(nil, "VString", v)
	}
	return string(s), nil
}

// Actions resolves the `actions` entry point: an Array of tagged
// action objects handed to the host action generator (§6).
func (p *Program) Actions() (value.Array, error) {
	v, err := p.resolveEntry("actions")
	if err != nil {
		return nil, err
	}
	a, ok := v.(value.Array)
	if !ok {
		return nil, unexpectedType(nil, "VArray", v)
	}
	return a, nil
}

// ExtractQueries is the hook for the commented-out static pre-pass
// described in the Design Notes: it would walk the compiled IR to
// collect every selector/element-state pair referenced by a
// `_queryAll` form, to brief the DOM driver ahead of observation. The
// live behavior it is grounded on returns an empty set, and the
// intended completed behavior is explicitly left unspecified, so this
// stays a no-op hook rather than a guess.
func (p *Program) ExtractQueries() []QueryReference {
	return nil
}

// QueryReference names one selector/element-state pair a `_queryAll`
// form could reference, for the (currently unused) static pre-pass.
type QueryReference struct {
	Selector string
	Kind     value.ElementStateKind
	Name     string
}
