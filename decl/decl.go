// Package decl defines the declaration tree: the parsed structural
// representation of a TypeScript ambient declaration file.
//
// The tree is a closed set of tagged variants, one struct per statement,
// member and type-node kind, in the style of go/ast. Emitters dispatch
// over the variants with exhaustive type switches; kinds a consumer does
// not handle must be skipped deliberately, never by accident, which is
// why unrecognized constructs are materialized as BadStmt/Bad instead of
// being dropped by the parser.
//
// A tree is created once per conversion, is never mutated after parse,
// and may be read concurrently.
package decl

// Stmt is a statement-level declaration: a direct child of the file
// scope or of a module/namespace body.
type Stmt interface {
	stmtNode()
}

// Member is a named member of a class, interface or anonymous object
// type.
type Member interface {
	memberNode()
}

// Type is a type-system node.
type Type interface {
	typeNode()
}

// Visibility is a class-member accessibility modifier.
type Visibility int

const (
	Public Visibility = iota
	Private
	Protected
)

// SourceFile is the root of a parsed declaration file.
type SourceFile struct {
	Stmts []Stmt
}

// Module is a namespace or module declaration. Quoted marks an ambient
// external module (`declare module "name"`), which has no global
// binding path.
type Module struct {
	Name   string
	Quoted bool
	Body   []Stmt
}

// Class is a class declaration. Extends holds the base types of the
// extends clause in source order; Implements holds the implements
// clause.
type Class struct {
	Name       string
	TypeParams []string
	Abstract   bool
	Extends    []Type
	Implements []Type
	Members    []Member
}

// Interface is an interface declaration.
type Interface struct {
	Name       string
	TypeParams []string
	Extends    []Type
	Members    []Member
}

// EnumMember is one member of an enum declaration. Value carries the
// raw initializer text when present, otherwise "".
type EnumMember struct {
	Name  string
	Value string
}

// Enum is an enum declaration.
type Enum struct {
	Name    string
	Members []EnumMember
}

// TypeAlias is a type alias declaration.
type TypeAlias struct {
	Name       string
	TypeParams []string
	Type       Type
}

// Var is a single variable binding from a var/let/const statement.
type Var struct {
	Name  string
	Const bool
	Type  Type
}

// Func is a free function declaration.
type Func struct {
	Name       string
	TypeParams []string
	Params     []Param
	Return     Type
}

// ExportAssign is an `export = target` assignment. Only identifier
// targets are representable; anything else parses as BadStmt.
type ExportAssign struct {
	Target string
}

// BadStmt is a statement kind the parser does not model. It is carried
// through the tree so emitters can ignore it as an explicit case.
type BadStmt struct {
	NodeType string
}

func (*Module) stmtNode()       {}
func (*Class) stmtNode()        {}
func (*Interface) stmtNode()    {}
func (*Enum) stmtNode()         {}
func (*TypeAlias) stmtNode()    {}
func (*Var) stmtNode()          {}
func (*Func) stmtNode()         {}
func (*ExportAssign) stmtNode() {}
func (*BadStmt) stmtNode()      {}

// Param is a function or method parameter.
type Param struct {
	Name     string
	Type     Type
	Optional bool
	Rest     bool
}

// Property is a named data member.
type Property struct {
	Name       string
	Type       Type
	Optional   bool
	Readonly   bool
	Static     bool
	Abstract   bool
	Visibility Visibility
}

// Method is a callable member. IsCtor marks constructor declarations.
type Method struct {
	Name       string
	TypeParams []string
	Params     []Param
	Return     Type
	Static     bool
	Abstract   bool
	IsCtor     bool
	Visibility Visibility
}

// IndexSig is an index signature member, e.g. `[key: string]: number`.
type IndexSig struct {
	KeyName  string
	KeyType  Type
	Value    Type
	Readonly bool
}

func (*Property) memberNode() {}
func (*Method) memberNode()   {}
func (*IndexSig) memberNode() {}
