package decl

import "strings"

// Prim is a predefined type keyword: string, number, boolean, void,
// undefined, null, never, any, unknown, object, symbol.
type Prim struct {
	Name string
}

// Ref is a reference to a named type, possibly dotted (A.B.C) and
// possibly parametrized.
type Ref struct {
	Name string
	Args []Type
}

// Union is a union type A | B | C.
type Union struct {
	Members []Type
}

// Intersection is an intersection type A & B & C.
type Intersection struct {
	Members []Type
}

// Array is an array type T[].
type Array struct {
	Elem Type
}

// Fun is a function type (a: A, b: B) => R.
type Fun struct {
	Params []Param
	Return Type
}

// Object is an anonymous type literal { a: A; b(): B }.
type Object struct {
	Members []Member
}

// StringLit is a string literal type.
type StringLit struct {
	Value string
}

// NumberLit is a numeric literal type. Raw preserves the source text so
// emitters can distinguish integral from fractional literals.
type NumberLit struct {
	Raw string
}

// Fractional reports whether the literal carries a decimal point.
func (n *NumberLit) Fractional() bool {
	return strings.Contains(n.Raw, ".")
}

// BoolLit is a boolean literal type.
type BoolLit struct {
	Value bool
}

// Keyof is a `keyof T` type-operator node.
type Keyof struct {
	Operand Type
}

// Paren is a parenthesized type.
type Paren struct {
	Inner Type
}

// Tuple is a tuple type [A, B].
type Tuple struct {
	Elems []Type
}

// Bad is a type-node kind the parser does not model.
type Bad struct {
	NodeType string
}

func (*Prim) typeNode()         {}
func (*Ref) typeNode()          {}
func (*Union) typeNode()        {}
func (*Intersection) typeNode() {}
func (*Array) typeNode()        {}
func (*Fun) typeNode()          {}
func (*Object) typeNode()       {}
func (*StringLit) typeNode()    {}
func (*NumberLit) typeNode()    {}
func (*BoolLit) typeNode()      {}
func (*Keyof) typeNode()        {}
func (*Paren) typeNode()        {}
func (*Tuple) typeNode()        {}
func (*Bad) typeNode()          {}
