package loader

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/webltl/specverify/internal/ir"
)

// Module is one parsed compiled-IR module (§6 "Compiled IR module
// set"): a name, a source span, and its top-level bindings in textual
// order.
type Module struct {
	Name     string
	Span     *ir.Span
	Bindings []ir.Binding
}

// LoadModule parses one on-disk IR module artifact into its in-memory
// form. Extern metadata, used only by the external loader for name
// resolution before this point, is opaque to the evaluator and is not
// retained here.
func LoadModule(data []byte) (*Module, error) {
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("module JSON must be an object")
	}
	name := root.Get("name").String()
	if name == "" {
		return nil, fmt.Errorf("module JSON missing required \"name\" field")
	}
	bindingsJSON := root.Get("bindings")
	if !bindingsJSON.Exists() {
		return nil, fmt.Errorf("module %q missing required \"bindings\" field", name)
	}

	var bindings []ir.Binding
	var parseErr error
	bindingsJSON.ForEach(func(_, bJSON gjson.Result) bool {
		b, err := parseBinding(bJSON)
		if err != nil {
			parseErr = err
			return false
		}
		bindings = append(bindings, b)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return &Module{
		Name:     name,
		Span:     parseSpan(root.Get("span")),
		Bindings: bindings,
	}, nil
}

func parseBinding(bJSON gjson.Result) (ir.Binding, error) {
	name := bJSON.Get("name").String()
	rhs, err := parseExpr(bJSON.Get("rhs"))
	if err != nil {
		return ir.Binding{}, fmt.Errorf("binding %q: %w", name, err)
	}
	return ir.Binding{Name: name, Rhs: rhs}, nil
}

func parseSpan(spanJSON gjson.Result) *ir.Span {
	if !spanJSON.Exists() || !spanJSON.IsObject() {
		return nil
	}
	return &ir.Span{
		File:      spanJSON.Get("file").String(),
		StartLine: int(spanJSON.Get("startLine").Int()),
		StartCol:  int(spanJSON.Get("startCol").Int()),
		EndLine:   int(spanJSON.Get("endLine").Int()),
		EndCol:    int(spanJSON.Get("endCol").Int()),
	}
}

func parseAnnotation(nodeJSON gjson.Result) ir.Annotation {
	ann := ir.Annotation{Span: parseSpan(nodeJSON.Get("span"))}
	for _, m := range nodeJSON.Get("meta").Array() {
		switch m.String() {
		case "newtype":
			ann.Meta |= ir.MetaNewtype
		case "foreign":
			ann.Meta |= ir.MetaForeign
		}
	}
	if fj := nodeJSON.Get("foreign"); fj.Exists() {
		params := make([]string, 0)
		for _, p := range fj.Get("params").Array() {
			params = append(params, p.String())
		}
		ann.Foreign = &ir.ForeignApply{Qualified: fj.Get("qualified").String(), Params: params}
	}
	return ann
}

// parseExpr recursively decodes one IR expression node from its
// tagged-union JSON form, dispatching on the "kind" field.
func parseExpr(nodeJSON gjson.Result) (ir.Expr, error) {
	if !nodeJSON.Exists() || !nodeJSON.IsObject() {
		return nil, fmt.Errorf("expected an IR expression object, got %s", nodeJSON.Raw)
	}
	ann := parseAnnotation(nodeJSON)
	kind := nodeJSON.Get("kind").String()

	switch kind {
	case "literal":
		return parseLiteral(nodeJSON, ann)

	case "variable":
		return &ir.Variable{Annotation: ann, Name: nodeJSON.Get("name").String()}, nil

	case "lambda":
		body, err := parseExpr(nodeJSON.Get("body"))
		if err != nil {
			return nil, err
		}
		return &ir.Lambda{Annotation: ann, Param: nodeJSON.Get("param").String(), Body: body}, nil

	case "application":
		fn, err := parseExpr(nodeJSON.Get("fn"))
		if err != nil {
			return nil, err
		}
		arg, err := parseExpr(nodeJSON.Get("arg"))
		if err != nil {
			return nil, err
		}
		return &ir.Application{Annotation: ann, Fn: fn, Arg: arg}, nil

	case "case":
		return parseCase(nodeJSON, ann)

	case "let":
		return parseLet(nodeJSON, ann)

	case "constructor":
		fields := make([]string, 0)
		for _, f := range nodeJSON.Get("fields").Array() {
			fields = append(fields, f.String())
		}
		return &ir.Constructor{
			Annotation: ann,
			TypeName:   nodeJSON.Get("typeName").String(),
			CtorName:   nodeJSON.Get("ctorName").String(),
			Fields:     fields,
		}, nil

	case "accessor":
		target, err := parseExpr(nodeJSON.Get("target"))
		if err != nil {
			return nil, err
		}
		return &ir.Accessor{Annotation: ann, Field: nodeJSON.Get("field").String(), Target: target}, nil

	case "objectUpdate":
		return parseObjectUpdate(nodeJSON, ann)

	default:
		return nil, fmt.Errorf("unknown IR expression kind %q", kind)
	}
}

func parseLiteral(nodeJSON gjson.Result, ann ir.Annotation) (ir.Expr, error) {
	lit := &ir.Literal{Annotation: ann}
	switch nodeJSON.Get("litKind").String() {
	case "int":
		lit.Kind = ir.LitInt
		lit.IntValue = nodeJSON.Get("intValue").Int()
	case "number":
		lit.Kind = ir.LitNumber
		lit.NumberValue = nodeJSON.Get("numberValue").Float()
	case "string":
		lit.Kind = ir.LitString
		lit.StringValue = nodeJSON.Get("stringValue").String()
	case "char":
		lit.Kind = ir.LitChar
		runes := []rune(nodeJSON.Get("charValue").String())
		if len(runes) > 0 {
			lit.CharValue = runes[0]
		}
	case "bool":
		lit.Kind = ir.LitBool
		lit.BoolValue = nodeJSON.Get("boolValue").Bool()
	case "array":
		lit.Kind = ir.LitArray
		elems, err := parseExprArray(nodeJSON.Get("elements"))
		if err != nil {
			return nil, err
		}
		lit.Elements = elems
	case "object":
		lit.Kind = ir.LitObjectField
		elems, err := parseExprArray(nodeJSON.Get("elements"))
		if err != nil {
			return nil, err
		}
		lit.Elements = elems
		for _, f := range nodeJSON.Get("fields").Array() {
			lit.ObjectFields = append(lit.ObjectFields, f.String())
		}
	default:
		return nil, fmt.Errorf("unknown literal kind %q", nodeJSON.Get("litKind").String())
	}
	return lit, nil
}

func parseExprArray(arrJSON gjson.Result) ([]ir.Expr, error) {
	var out []ir.Expr
	var parseErr error
	arrJSON.ForEach(func(_, el gjson.Result) bool {
		e, err := parseExpr(el)
		if err != nil {
			parseErr = err
			return false
		}
		out = append(out, e)
		return true
	})
	return out, parseErr
}

func parseCase(nodeJSON gjson.Result, ann ir.Annotation) (ir.Expr, error) {
	scrutinees, err := parseExprArray(nodeJSON.Get("scrutinees"))
	if err != nil {
		return nil, err
	}

	var alts []ir.Alternative
	var parseErr error
	nodeJSON.Get("alts").ForEach(func(_, altJSON gjson.Result) bool {
		alt, err := parseAlternative(altJSON)
		if err != nil {
			parseErr = err
			return false
		}
		alts = append(alts, alt)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return &ir.Case{Annotation: ann, Scrutinees: scrutinees, Alts: alts}, nil
}

func parseAlternative(altJSON gjson.Result) (ir.Alternative, error) {
	var binders []*ir.Binder
	var parseErr error
	altJSON.Get("binders").ForEach(func(_, bJSON gjson.Result) bool {
		b, err := parseBinder(bJSON)
		if err != nil {
			parseErr = err
			return false
		}
		binders = append(binders, b)
		return true
	})
	if parseErr != nil {
		return ir.Alternative{}, parseErr
	}

	var results []ir.GuardedResult
	altJSON.Get("results").ForEach(func(_, rJSON gjson.Result) bool {
		var guard ir.Expr
		if gJSON := rJSON.Get("guard"); gJSON.Exists() {
			g, err := parseExpr(gJSON)
			if err != nil {
				parseErr = err
				return false
			}
			guard = g
		}
		result, err := parseExpr(rJSON.Get("result"))
		if err != nil {
			parseErr = err
			return false
		}
		results = append(results, ir.GuardedResult{Guard: guard, Result: result})
		return true
	})
	if parseErr != nil {
		return ir.Alternative{}, parseErr
	}
	return ir.Alternative{Binders: binders, Results: results}, nil
}

func parseBinder(bJSON gjson.Result) (*ir.Binder, error) {
	b := &ir.Binder{}
	switch bJSON.Get("kind").String() {
	case "wildcard":
		b.Kind = ir.BindWildcard
	case "literal":
		lit, err := parseLiteral(bJSON.Get("literal"), ir.Annotation{})
		if err != nil {
			return nil, err
		}
		b.Kind = ir.BindLiteral
		b.Literal = lit.(*ir.Literal)
	case "variable":
		b.Kind = ir.BindVariable
		b.Name = bJSON.Get("name").String()
	case "named":
		inner, err := parseBinder(bJSON.Get("inner"))
		if err != nil {
			return nil, err
		}
		b.Kind = ir.BindNamed
		b.Name = bJSON.Get("name").String()
		b.Inner = inner
	case "array":
		var elements []*ir.Binder
		var parseErr error
		bJSON.Get("elements").ForEach(func(_, eJSON gjson.Result) bool {
			e, err := parseBinder(eJSON)
			if err != nil {
				parseErr = err
				return false
			}
			elements = append(elements, e)
			return true
		})
		if parseErr != nil {
			return nil, parseErr
		}
		b.Kind = ir.BindArray
		b.Elements = elements
	case "object":
		var fields []ir.FieldBinder
		var parseErr error
		bJSON.Get("fields").ForEach(func(_, fJSON gjson.Result) bool {
			inner, err := parseBinder(fJSON.Get("binder"))
			if err != nil {
				parseErr = err
				return false
			}
			fields = append(fields, ir.FieldBinder{Key: fJSON.Get("key").String(), Binder: inner})
			return true
		})
		if parseErr != nil {
			return nil, parseErr
		}
		b.Kind = ir.BindObject
		b.Fields = fields
	case "constructor":
		var ctorBinders []*ir.Binder
		var parseErr error
		bJSON.Get("ctorBinders").ForEach(func(_, cJSON gjson.Result) bool {
			c, err := parseBinder(cJSON)
			if err != nil {
				parseErr = err
				return false
			}
			ctorBinders = append(ctorBinders, c)
			return true
		})
		if parseErr != nil {
			return nil, parseErr
		}
		b.Kind = ir.BindConstructor
		b.CtorType = bJSON.Get("ctorType").String()
		b.CtorName = bJSON.Get("ctorName").String()
		b.CtorBinders = ctorBinders
		b.IsNewtype = bJSON.Get("isNewtype").Bool()
	default:
		return nil, fmt.Errorf("unknown binder kind %q", bJSON.Get("kind").String())
	}
	return b, nil
}

func parseLet(nodeJSON gjson.Result, ann ir.Annotation) (ir.Expr, error) {
	var groups []ir.LetGroup
	var parseErr error
	nodeJSON.Get("groups").ForEach(func(_, gJSON gjson.Result) bool {
		var bindings []ir.Binding
		gJSON.Get("bindings").ForEach(func(_, bJSON gjson.Result) bool {
			b, err := parseBinding(bJSON)
			if err != nil {
				parseErr = err
				return false
			}
			bindings = append(bindings, b)
			return true
		})
		if parseErr != nil {
			return false
		}
		groups = append(groups, ir.LetGroup{Recursive: gJSON.Get("recursive").Bool(), Bindings: bindings})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	body, err := parseExpr(nodeJSON.Get("body"))
	if err != nil {
		return nil, err
	}
	return &ir.Let{Annotation: ann, Groups: groups, Body: body}, nil
}

func parseObjectUpdate(nodeJSON gjson.Result, ann ir.Annotation) (ir.Expr, error) {
	target, err := parseExpr(nodeJSON.Get("target"))
	if err != nil {
		return nil, err
	}
	var updates []ir.FieldUpdate
	var parseErr error
	nodeJSON.Get("updates").ForEach(func(_, uJSON gjson.Result) bool {
		rhs, err := parseExpr(uJSON.Get("rhs"))
		if err != nil {
			parseErr = err
			return false
		}
		updates = append(updates, ir.FieldUpdate{Field: uJSON.Get("field").String(), Rhs: rhs})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return &ir.ObjectUpdate{Annotation: ann, Target: target, Updates: updates}, nil
}
