package ir

// BinderKind discriminates the shape of a case/let binder (§4.C).
type BinderKind int

const (
	BindWildcard BinderKind = iota
	BindLiteral
	BindVariable
	BindNamed
	BindArray
	BindObject
	BindConstructor
)

// FieldBinder pairs an object-key with its inner binder, for
// BindObject.
type FieldBinder struct {
	Key    string
	Binder *Binder
}

// Binder describes how a case/let pattern decomposes a value and what
// names it binds. Exactly the fields relevant to Kind are populated.
type Binder struct {
	Kind BinderKind

	// BindLiteral
	Literal *Literal

	// BindVariable, BindNamed
	Name string

	// BindNamed
	Inner *Binder

	// BindArray
	Elements []*Binder

	// BindObject
	Fields []FieldBinder

	// BindConstructor
	CtorType    string
	CtorName    string
	CtorBinders []*Binder
	IsNewtype   bool
}
