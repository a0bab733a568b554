package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyenyou/scala-js-ts-importer/decl"
	"github.com/nguyenyou/scala-js-ts-importer/errors"
)

func parseOne[T decl.Stmt](t *testing.T, source string) T {
	t.Helper()
	file, err := Parse([]byte(source))
	require.NoError(t, err)
	require.Len(t, file.Stmts, 1)
	stmt, ok := file.Stmts[0].(T)
	require.True(t, ok, "statement is %T", file.Stmts[0])
	return stmt
}

func TestParseSyntaxErrorFails(t *testing.T) {
	_, err := Parse([]byte("declare class {{{"))
	require.Error(t, err)
	assert.True(t, errors.IsParseError(err))
}

func TestParseEmptySource(t *testing.T) {
	file, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, file.Stmts)
}

func TestParseInterface(t *testing.T) {
	i := parseOne[*decl.Interface](t, `
interface Point {
    x: number;
    readonly label?: string;
    dist(other: Point): number;
}
`)
	assert.Equal(t, "Point", i.Name)
	require.Len(t, i.Members, 3)

	x, ok := i.Members[0].(*decl.Property)
	require.True(t, ok)
	assert.Equal(t, "x", x.Name)
	assert.Equal(t, &decl.Prim{Name: "number"}, x.Type)
	assert.False(t, x.Readonly)
	assert.False(t, x.Optional)

	label, ok := i.Members[1].(*decl.Property)
	require.True(t, ok)
	assert.Equal(t, "label", label.Name)
	assert.True(t, label.Readonly)
	assert.True(t, label.Optional)

	dist, ok := i.Members[2].(*decl.Method)
	require.True(t, ok)
	assert.Equal(t, "dist", dist.Name)
	require.Len(t, dist.Params, 1)
	assert.Equal(t, "other", dist.Params[0].Name)
	assert.Equal(t, &decl.Ref{Name: "Point"}, dist.Params[0].Type)
	assert.Equal(t, &decl.Prim{Name: "number"}, dist.Return)
}

func TestParseInterfaceExtends(t *testing.T) {
	i := parseOne[*decl.Interface](t, `interface C extends A, B {}`)
	assert.Equal(t, "C", i.Name)
	require.Len(t, i.Extends, 2)
	assert.Equal(t, &decl.Ref{Name: "A"}, i.Extends[0])
	assert.Equal(t, &decl.Ref{Name: "B"}, i.Extends[1])
}

func TestParseDeclareClass(t *testing.T) {
	c := parseOne[*decl.Class](t, `
declare class Widget extends Base implements Sized {
    constructor(width: number);
    width: number;
    private secret: string;
    static make(): Widget;
    resize(w: number, h?: number): void;
}
`)
	assert.Equal(t, "Widget", c.Name)
	assert.False(t, c.Abstract)
	require.Len(t, c.Extends, 1)
	assert.Equal(t, &decl.Ref{Name: "Base"}, c.Extends[0])
	require.Len(t, c.Implements, 1)
	assert.Equal(t, &decl.Ref{Name: "Sized"}, c.Implements[0])
	require.Len(t, c.Members, 5)

	ctor, ok := c.Members[0].(*decl.Method)
	require.True(t, ok)
	assert.True(t, ctor.IsCtor)
	require.Len(t, ctor.Params, 1)

	secret, ok := c.Members[2].(*decl.Property)
	require.True(t, ok)
	assert.Equal(t, decl.Private, secret.Visibility)

	factory, ok := c.Members[3].(*decl.Method)
	require.True(t, ok)
	assert.True(t, factory.Static)

	resize, ok := c.Members[4].(*decl.Method)
	require.True(t, ok)
	require.Len(t, resize.Params, 2)
	assert.False(t, resize.Params[0].Optional)
	assert.True(t, resize.Params[1].Optional)
}

func TestParseAbstractClass(t *testing.T) {
	c := parseOne[*decl.Class](t, `
declare abstract class Shape {
    abstract area(): number;
}
`)
	assert.Equal(t, "Shape", c.Name)
	assert.True(t, c.Abstract)
	require.Len(t, c.Members, 1)
	area, ok := c.Members[0].(*decl.Method)
	require.True(t, ok)
	assert.True(t, area.Abstract)
}

func TestParseEnum(t *testing.T) {
	e := parseOne[*decl.Enum](t, `
declare enum Color {
    Red,
    Green = 3,
    Blue = "b",
}
`)
	assert.Equal(t, "Color", e.Name)
	require.Len(t, e.Members, 3)
	assert.Equal(t, "Red", e.Members[0].Name)
	assert.Equal(t, "Green", e.Members[1].Name)
	assert.Equal(t, "3", e.Members[1].Value)
	assert.Equal(t, "Blue", e.Members[2].Name)
}

func TestParseNamespace(t *testing.T) {
	m := parseOne[*decl.Module](t, `
declare namespace util {
    function now(): number;
}
`)
	assert.Equal(t, "util", m.Name)
	assert.False(t, m.Quoted)
	require.Len(t, m.Body, 1)
	f, ok := m.Body[0].(*decl.Func)
	require.True(t, ok)
	assert.Equal(t, "now", f.Name)
}

func TestParseDottedNamespaceNests(t *testing.T) {
	outer := parseOne[*decl.Module](t, `
declare namespace a.b.c {
    interface X {}
}
`)
	assert.Equal(t, "a", outer.Name)
	require.Len(t, outer.Body, 1)
	mid, ok := outer.Body[0].(*decl.Module)
	require.True(t, ok)
	assert.Equal(t, "b", mid.Name)
	require.Len(t, mid.Body, 1)
	inner, ok := mid.Body[0].(*decl.Module)
	require.True(t, ok)
	assert.Equal(t, "c", inner.Name)
	require.Len(t, inner.Body, 1)
	_, ok = inner.Body[0].(*decl.Interface)
	assert.True(t, ok)
}

func TestParseQuotedModule(t *testing.T) {
	m := parseOne[*decl.Module](t, `
declare module "some-lib" {
    export function f(): void;
}
`)
	assert.Equal(t, "some-lib", m.Name)
	assert.True(t, m.Quoted)
}

func TestParseFunctionDeclaration(t *testing.T) {
	f := parseOne[*decl.Func](t, `declare function greet(who: string, ...rest: string[]): string;`)
	assert.Equal(t, "greet", f.Name)
	require.Len(t, f.Params, 2)
	assert.Equal(t, "who", f.Params[0].Name)
	assert.False(t, f.Params[0].Rest)
	assert.Equal(t, "rest", f.Params[1].Name)
	assert.True(t, f.Params[1].Rest)
	assert.Equal(t, &decl.Prim{Name: "string"}, f.Return)
}

func TestParseGenericFunction(t *testing.T) {
	f := parseOne[*decl.Func](t, `declare function id<T extends object>(value: T): T;`)
	assert.Equal(t, []string{"T"}, f.TypeParams)
	assert.Equal(t, &decl.Ref{Name: "T"}, f.Return)
}

func TestParseVariables(t *testing.T) {
	file, err := Parse([]byte(`
declare var debug: boolean;
declare const VERSION: string;
declare let a: number, b: number;
`))
	require.NoError(t, err)
	require.Len(t, file.Stmts, 4)

	v0 := file.Stmts[0].(*decl.Var)
	assert.Equal(t, "debug", v0.Name)
	assert.False(t, v0.Const)

	v1 := file.Stmts[1].(*decl.Var)
	assert.Equal(t, "VERSION", v1.Name)
	assert.True(t, v1.Const)

	assert.Equal(t, "a", file.Stmts[2].(*decl.Var).Name)
	assert.Equal(t, "b", file.Stmts[3].(*decl.Var).Name)
}

func TestParseTypeAlias(t *testing.T) {
	a := parseOne[*decl.TypeAlias](t, `type Id = number;`)
	assert.Equal(t, "Id", a.Name)
	assert.Equal(t, &decl.Prim{Name: "number"}, a.Type)
}

func TestParseExportAssignment(t *testing.T) {
	file, err := Parse([]byte(`
declare function main(): void;
export = main;
`))
	require.NoError(t, err)
	require.Len(t, file.Stmts, 2)
	exp, ok := file.Stmts[1].(*decl.ExportAssign)
	require.True(t, ok)
	assert.Equal(t, "main", exp.Target)
}

func TestParseExportedDeclarationUnwraps(t *testing.T) {
	f := parseOne[*decl.Func](t, `export declare function f(): void;`)
	assert.Equal(t, "f", f.Name)
}

func TestParseImportBecomesBadStmt(t *testing.T) {
	b := parseOne[*decl.BadStmt](t, `import { x } from "y";`)
	assert.Equal(t, "import_statement", b.NodeType)
}

func TestParseIndexSignature(t *testing.T) {
	i := parseOne[*decl.Interface](t, `
interface Dict {
    [key: string]: number;
}
`)
	require.Len(t, i.Members, 1)
	sig, ok := i.Members[0].(*decl.IndexSig)
	require.True(t, ok)
	assert.Equal(t, "key", sig.KeyName)
	assert.Equal(t, &decl.Prim{Name: "string"}, sig.KeyType)
	assert.Equal(t, &decl.Prim{Name: "number"}, sig.Value)
	assert.False(t, sig.Readonly)
}

func TestParseCommentsSkipped(t *testing.T) {
	file, err := Parse([]byte(`
// leading comment
/** doc comment */
interface A {}
`))
	require.NoError(t, err)
	require.Len(t, file.Stmts, 1)
}
