package interp

import (
	"golang.org/x/text/unicode/norm"

	"unicode/utf8"

	ierrors "github.com/webltl/specverify/internal/errors"
	"github.com/webltl/specverify/internal/ir"
	"github.com/webltl/specverify/internal/match"
	"github.com/webltl/specverify/internal/value"
)

// specialForms names the built-in forms the temporal driver (§4.E)
// intercepts before ordinary evaluation, and their fixed arity.
var specialForms = map[string]int{
	"always":     1,
	"next":       1,
	"trace":      2,
	"_property":  1,
	"_attribute": 1,
	"_queryAll":  2,
}

// Eval is the core evaluator (§4.D): a tree-walk over the IR producing
// a Value or an EvalError, with the temporal driver (§4.E) and query
// resolver (§4.F) intercepting recognized special forms first.
// Grounded on the teacher's internal/interp/evaluator/core_evaluator.go
// dispatch-by-node-kind structure.
func (i *Interpreter) Eval(expr ir.Expr, env *value.Env, trace Trace) (value.Value, error) {
	switch e := expr.(type) {
	case *ir.Literal:
		return i.evalLiteral(e, env, trace)

	case *ir.Variable:
		return i.evalVariable(e, env, trace)

	case *ir.Lambda:
		return &value.Function{Env: env, Param: e.Param, Body: e.Body}, nil

	case *ir.Application:
		if head, args := flattenSpine(e); isSpecialForm(head, args) {
			return i.evalSpecialForm(head.(*ir.Variable).Name, e.Annotation.Span, args, env, trace)
		}
		return i.evalApplication(e, env, trace)

	case *ir.Case:
		return i.evalCase(e, env, trace)

	case *ir.Let:
		return i.evalLet(e, env, trace)

	case *ir.Constructor:
		return i.evalConstructor(e), nil

	case *ir.Accessor:
		return i.evalAccessor(e, env, trace)

	case *ir.ObjectUpdate:
		return i.evalObjectUpdate(e, env, trace)

	default:
		return nil, ierrors.NewUnexpectedError(nil, "unknown IR node %T", expr)
	}
}

func (i *Interpreter) evalLiteral(e *ir.Literal, env *value.Env, trace Trace) (value.Value, error) {
	switch e.Kind {
	case ir.LitBool:
		return value.Bool(e.BoolValue), nil
	case ir.LitInt:
		return value.Int(e.IntValue), nil
	case ir.LitNumber:
		return value.Number(e.NumberValue), nil
	case ir.LitChar:
		return value.Char(e.CharValue), nil
	case ir.LitString:
		return decodeStringLiteral(e)
	case ir.LitArray:
		elems := make(value.Array, len(e.Elements))
		for idx, el := range e.Elements {
			v, err := i.Eval(el, env, trace)
			if err != nil {
				return nil, err
			}
			elems[idx] = v
		}
		return elems, nil
	case ir.LitObjectField:
		vals := make([]value.Value, len(e.Elements))
		for idx, el := range e.Elements {
			v, err := i.Eval(el, env, trace)
			if err != nil {
				return nil, err
			}
			vals[idx] = v
		}
		return value.NewObject(e.ObjectFields, vals), nil
	default:
		return nil, ierrors.NewUnexpectedError(e.Annotation.Span, "unknown literal kind")
	}
}

// decodeStringLiteral decodes a string literal's already-unescaped
// text, rejecting invalid UTF-8 (InvalidString, §4.D) and
// NFC-normalizing the result so structural equality over String
// values is stable regardless of the source's Unicode encoding.
func decodeStringLiteral(e *ir.Literal) (value.Value, error) {
	if !utf8.ValidString(e.StringValue) {
		return nil, ierrors.NewInvalidString(e.Annotation.Span)
	}
	return value.String(norm.NFC.String(e.StringValue)), nil
}

func (i *Interpreter) evalVariable(e *ir.Variable, env *value.Env, trace Trace) (value.Value, error) {
	if e.Annotation.Foreign != nil {
		return i.dispatchForeign(e.Annotation.Foreign, e.Annotation.Span, env, trace)
	}
	return i.resolveName(e.Name, e.Annotation.Span, env, trace)
}

// resolveName looks up a bound name, forcing a Defer thunk or a
// re-entrant module-level expression binding the way evalVariable does.
// Shared with foreign dispatch, which resolves its already-bound
// parameter names the same way rather than re-evaluating expressions.
func (i *Interpreter) resolveName(name string, span *ir.Span, env *value.Env, trace Trace) (value.Value, error) {
	b, ok := env.Lookup(name)
	if !ok {
		return nil, ierrors.NewNotInScope(span, name)
	}
	if b.IsExpr() {
		rhs, ok := b.Expr.(ir.Expr)
		if !ok {
			return nil, ierrors.NewUnexpectedError(span, "malformed binding for %s", name)
		}
		return i.Eval(rhs, env.WithoutLocals(), trace)
	}
	if d, ok := b.Value.(*value.Defer); ok {
		return i.Eval(d.Expr, d.Env, trace)
	}
	return b.Value, nil
}

func (i *Interpreter) evalApplication(e *ir.Application, env *value.Env, trace Trace) (value.Value, error) {
	fnVal, err := i.Eval(e.Fn, env, trace)
	if err != nil {
		return nil, err
	}
	fn, ok := fnVal.(*value.Function)
	if !ok {
		return nil, unexpectedType(e.Annotation.Span, "VFunction", fnVal)
	}
	argVal, err := i.Eval(e.Arg, env, trace)
	if err != nil {
		return nil, err
	}
	if fn.Native != nil {
		return fn.Native(argVal), nil
	}
	bodyEnv := fn.Env.Bind(fn.Param, value.ValueBinding(argVal))
	return i.Eval(fn.Body, bodyEnv, trace)
}

func (i *Interpreter) evalCase(e *ir.Case, env *value.Env, trace Trace) (value.Value, error) {
	scrutinees := make([]value.Value, len(e.Scrutinees))
	for idx, s := range e.Scrutinees {
		v, err := i.Eval(s, env, trace)
		if err != nil {
			return nil, err
		}
		scrutinees[idx] = v
	}

	for _, alt := range e.Alts {
		bindings, ok := match.MatchAll(alt.Binders, scrutinees)
		if !ok {
			continue
		}
		altEnv := bindValues(env, bindings)
		for _, gr := range alt.Results {
			if gr.Guard != nil {
				gv, err := i.Eval(gr.Guard, altEnv, trace)
				if err != nil {
					return nil, err
				}
				gb, ok := gv.(value.Bool)
				if !ok {
					return nil, unexpectedType(e.Annotation.Span, "VBool", gv)
				}
				if !bool(gb) {
					continue
				}
			}
			return i.Eval(gr.Result, altEnv, trace)
		}
	}
	return nil, ierrors.NewUnexpectedError(e.Annotation.Span, "Non-exhaustive case")
}

func bindValues(env *value.Env, bindings map[string]value.Value) *value.Env {
	if len(bindings) == 0 {
		return env
	}
	frame := make(map[string]value.Binding, len(bindings))
	for name, v := range bindings {
		frame[name] = value.ValueBinding(v)
	}
	return env.BindAll(frame)
}

func (i *Interpreter) evalLet(e *ir.Let, env *value.Env, trace Trace) (value.Value, error) {
	cur := env
	for _, group := range e.Groups {
		if !group.Recursive {
			// Non-recursive: each binding is a Defer over the
			// environment visible at this point in the group (§4.D
			// "Let"), so later bindings in the same non-recursive group
			// can see earlier ones but not vice versa.
			for _, b := range group.Bindings {
				cur = cur.Bind(b.Name, value.ValueBinding(&value.Defer{Env: cur, Expr: b.Rhs}))
			}
			continue
		}
		// Recursive group: build the group's bindings first, each as a
		// Defer whose captured environment is the *completed* group
		// environment (the fixed point), so the bindings may refer to
		// one another (§4.B "Mutual recursion").
		groupFrame := make(map[string]value.Binding, len(group.Bindings))
		var groupEnv *value.Env
		for _, b := range group.Bindings {
			bCopy := b
			groupFrame[bCopy.Name] = value.ValueBinding(&value.Defer{Expr: bCopy.Rhs})
		}
		groupEnv = cur.BindAll(groupFrame)
		// Patch each Defer to capture groupEnv (the environment that
		// includes the not-yet-completed group itself).
		for _, b := range group.Bindings {
			if bd, ok := groupFrame[b.Name].Value.(*value.Defer); ok {
				bd.Env = groupEnv
			}
		}
		cur = groupEnv
	}
	return i.Eval(e.Body, cur, trace)
}

func (i *Interpreter) evalConstructor(e *ir.Constructor) value.Value {
	if e.Annotation.Meta.Has(ir.MetaNewtype) {
		return identityFunction()
	}
	return curriedConstructor(e.CtorName, e.Fields, nil)
}

// identityFunction builds the value of a newtype constructor: applying
// it to any value returns that value unchanged (§4.D "Newtype
// transparency").
func identityFunction() value.Value {
	return &value.Function{Native: func(arg value.Value) value.Value { return arg }}
}

// curriedConstructor builds the arity-n curried native function chain
// that, fully applied, produces the canonical tagged object
// {constructor: ctorName, fields: [...]}. Each partial application
// captures one more collected argument in a closure over the native
// step's already-collected slice.
func curriedConstructor(ctorName string, fields []string, collected []value.Value) value.Value {
	if len(collected) == len(fields) {
		vals := make([]value.Value, len(collected))
		copy(vals, collected)
		return value.NewObject([]string{"constructor", "fields"}, []value.Value{
			value.String(ctorName), value.Array(vals),
		})
	}
	return &value.Function{Native: func(arg value.Value) value.Value {
		next := make([]value.Value, len(collected)+1)
		copy(next, collected)
		next[len(collected)] = arg
		return curriedConstructor(ctorName, fields, next)
	}}
}
