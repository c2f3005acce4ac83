package ir

// Meta is a bitset of annotation markers carried on IR nodes.
type Meta uint8

const (
	// MetaNewtype marks a constructor/binder pair as a newtype: the
	// constructor is the identity function and the binder unwraps
	// transparently instead of checking a tagged-object shape.
	MetaNewtype Meta = 1 << iota
	// MetaForeign records the compiled IR's foreign marker on a node.
	// The evaluator does not read it: a variable is routed through
	// foreign dispatch only when Annotation.Foreign is set.
	MetaForeign
)

// Has reports whether m contains flag.
func (m Meta) Has(flag Meta) bool { return m&flag != 0 }

// ForeignApply records a pending foreign call on a Variable node: the
// qualified name of the registered primitive and the parameter names
// (already bound in the enclosing environment by preceding applications)
// to marshal and pass to it, in order.
type ForeignApply struct {
	Qualified string
	Params    []string
}

// Annotation is carried by every Expr: a source span plus optional
// metadata markers.
type Annotation struct {
	Span    *Span
	Meta    Meta
	Foreign *ForeignApply
}

// Expr is any node of the compiled IR.
type Expr interface {
	Ann() Annotation
}

// LitKind distinguishes the literal payload on a Literal node.
type LitKind int

const (
	LitInt LitKind = iota
	LitNumber
	LitString
	LitChar
	LitBool
	LitArray
	LitObjectField
)

// Literal is a literal numeric/string/char/bool/array/object value.
// Array and object literals nest further Expr values; ObjectFields
// gives field order for object literals.
type Literal struct {
	Annotation
	Kind         LitKind
	IntValue     int64
	NumberValue  float64
	StringValue  string
	CharValue    rune
	BoolValue    bool
	Elements     []Expr   // LitArray
	ObjectFields []string // LitObjectField, parallel to Elements
}

func (e *Literal) Ann() Annotation { return e.Annotation }

// Variable is a reference to a qualified or unqualified name. When
// Annotation.Foreign is set, evaluating this node invokes foreign
// dispatch instead of ordinary environment lookup (§4.D, §4.G).
type Variable struct {
	Annotation
	Name string
}

func (e *Variable) Ann() Annotation { return e.Annotation }

// Lambda is a single-parameter function literal; the body is not
// evaluated until application.
type Lambda struct {
	Annotation
	Param string
	Body  Expr
}

func (e *Lambda) Ann() Annotation { return e.Annotation }

// Application applies Fn to Arg.
type Application struct {
	Annotation
	Fn  Expr
	Arg Expr
}

func (e *Application) Ann() Annotation { return e.Annotation }

// Alternative is one arm of a Case: a list of binders matched against
// the scrutinees (one binder per scrutinee) and a list of guarded
// results tried in order. An unguarded alternative has exactly one
// GuardedResult with Guard == nil.
type Alternative struct {
	Binders []*Binder
	Results []GuardedResult
}

// GuardedResult pairs an optional boolean guard expression with the
// result expression to evaluate if the guard holds.
type GuardedResult struct {
	Guard  Expr // nil means unconditional
	Result Expr
}

// Case evaluates Scrutinees and tries Alternatives in textual order.
type Case struct {
	Annotation
	Scrutinees []Expr
	Alts       []Alternative
}

func (e *Case) Ann() Annotation { return e.Annotation }

// Binding is a single name = expr pair within a LetGroup.
type Binding struct {
	Name string
	Rhs  Expr
}

// LetGroup is one group of a let's binding list: either a single
// non-recursive binding or a mutually recursive set.
type LetGroup struct {
	Recursive bool
	Bindings  []Binding
}

// Let evaluates Body after extending the environment with Groups, in
// textual order.
type Let struct {
	Annotation
	Groups []LetGroup
	Body   Expr
}

func (e *Let) Ann() Annotation { return e.Annotation }

// Constructor builds the curried-lambda-chain value for a data
// constructor of the named type. A newtype constructor (Annotation.Meta
// has MetaNewtype) has exactly one field and is the identity function.
type Constructor struct {
	Annotation
	TypeName string
	CtorName string
	Fields   []string
}

func (e *Constructor) Ann() Annotation { return e.Annotation }

// Accessor projects Field out of Target, which must evaluate to an
// Object.
type Accessor struct {
	Annotation
	Field  string
	Target Expr
}

func (e *Accessor) Ann() Annotation { return e.Annotation }

// FieldUpdate is one field = expr pair in an ObjectUpdate.
type FieldUpdate struct {
	Field string
	Rhs   Expr
}

// ObjectUpdate evaluates Target to an Object and right-biased merges
// in Updates, preserving existing keys not mentioned and adding any
// new ones.
type ObjectUpdate struct {
	Annotation
	Target  Expr
	Updates []FieldUpdate
}

func (e *ObjectUpdate) Ann() Annotation { return e.Annotation }
