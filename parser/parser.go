// Package parser turns TypeScript ambient declaration source into a
// decl tree.
//
// It drives tree-sitter with the TypeScript grammar and lowers the
// concrete syntax tree into the closed decl node set. Each Parse call
// creates its own tree-sitter parser instance, so a Parser-free API is
// safe for concurrent use. Statement kinds the lowering does not model
// become decl.BadStmt and type kinds become decl.Bad; only a source
// that tree-sitter cannot turn into a syntax-error-free tree fails the
// call, as a structured error with no partial output.
package parser

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/nguyenyou/scala-js-ts-importer/decl"
	"github.com/nguyenyou/scala-js-ts-importer/errors"
)

// Parse parses declaration source text into a decl tree.
func Parse(source []byte) (*decl.SourceFile, error) {
	return ParseCtx(context.Background(), source)
}

// ParseCtx is Parse with cancellation. Tree-sitter cannot be
// interrupted mid-parse; the context applies between phases.
func ParseCtx(ctx context.Context, source []byte) (*decl.SourceFile, error) {
	// New parser per call for thread safety.
	parser := sitter.NewParser()
	parser.SetLanguage(typescript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, errors.Wrap(errors.ErrParse, err.Error())
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, errors.NewParseError("tree-sitter returned no syntax tree")
	}
	if root.HasError() {
		return nil, errors.NewParseError("source contains syntax errors")
	}

	p := &treeParser{src: source}
	file := &decl.SourceFile{}
	for i := 0; i < int(root.ChildCount()); i++ {
		p.parseStmtInto(root.Child(i), &file.Stmts)
	}
	return file, nil
}

// treeParser lowers one concrete syntax tree. It holds the source bytes
// that node spans index into.
type treeParser struct {
	src []byte
}

func (p *treeParser) text(n *sitter.Node) string {
	return string(p.src[n.StartByte():n.EndByte()])
}

// parseStmtInto lowers one statement-level CST node, appending zero or
// more decl statements (a variable statement declares one per
// declarator).
func (p *treeParser) parseStmtInto(node *sitter.Node, out *[]decl.Stmt) {
	switch node.Type() {
	case "comment", ";", "expression_statement", "empty_statement":
		// Nothing declared.

	case "ambient_declaration":
		// `declare X` unwraps to X; `declare global { }` is an
		// augmentation we do not model.
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(i)
			switch child.Type() {
			case "declare", "global":
			case "statement_block":
				*out = append(*out, &decl.BadStmt{NodeType: "global_augmentation"})
			default:
				p.parseStmtInto(child, out)
			}
		}

	case "module", "internal_module":
		if m := p.parseModule(node); m != nil {
			*out = append(*out, m)
		}

	case "class_declaration":
		*out = append(*out, p.parseClass(node, false))

	case "abstract_class_declaration":
		*out = append(*out, p.parseClass(node, true))

	case "interface_declaration":
		*out = append(*out, p.parseInterface(node))

	case "enum_declaration":
		*out = append(*out, p.parseEnum(node))

	case "type_alias_declaration":
		*out = append(*out, p.parseTypeAlias(node))

	case "function_declaration", "function_signature":
		*out = append(*out, p.parseFunc(node))

	case "lexical_declaration":
		p.parseVarStmt(node, p.hasChild(node, "const"), out)

	case "variable_declaration":
		p.parseVarStmt(node, false, out)

	case "export_statement":
		p.parseExport(node, out)

	case "import_statement", "import_alias":
		*out = append(*out, &decl.BadStmt{NodeType: node.Type()})

	default:
		*out = append(*out, &decl.BadStmt{NodeType: node.Type()})
	}
}

// parseExport lowers export statements. `export = ident` becomes an
// export assignment; `export <declaration>` unwraps to the declaration;
// re-export clauses are not modeled.
func (p *treeParser) parseExport(node *sitter.Node, out *[]decl.Stmt) {
	assignment := false
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "export", "default", "declare", ";":
		case "=":
			assignment = true
		case "identifier":
			if assignment {
				*out = append(*out, &decl.ExportAssign{Target: p.text(child)})
				return
			}
			*out = append(*out, &decl.BadStmt{NodeType: "export_expression"})
		case "export_clause", "string", "namespace_export":
			*out = append(*out, &decl.BadStmt{NodeType: "export_clause"})
			return
		default:
			if assignment {
				// `export =` of a non-identifier expression.
				*out = append(*out, &decl.BadStmt{NodeType: "export_assignment"})
				return
			}
			p.parseStmtInto(child, out)
		}
	}
}

// parseModule lowers a namespace/module declaration. A dotted name
// `namespace a.b.c` produces one nested module per segment; a quoted
// specifier marks an ambient external module.
func (p *treeParser) parseModule(node *sitter.Node) decl.Stmt {
	var name string
	var quoted bool
	var body []decl.Stmt

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "identifier", "nested_identifier":
			name = p.text(child)
		case "string":
			name = stripQuotes(p.text(child))
			quoted = true
		case "statement_block":
			for j := 0; j < int(child.ChildCount()); j++ {
				gc := child.Child(j)
				if gc.Type() == "{" || gc.Type() == "}" {
					continue
				}
				p.parseStmtInto(gc, &body)
			}
		}
	}
	if name == "" {
		return &decl.BadStmt{NodeType: node.Type()}
	}
	if quoted {
		return &decl.Module{Name: name, Quoted: true, Body: body}
	}

	segments := strings.Split(name, ".")
	m := &decl.Module{Name: segments[len(segments)-1], Body: body}
	for i := len(segments) - 2; i >= 0; i-- {
		m = &decl.Module{Name: segments[i], Body: []decl.Stmt{m}}
	}
	return m
}

func (p *treeParser) parseClass(node *sitter.Node, abstract bool) *decl.Class {
	c := &decl.Class{Abstract: abstract}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "type_identifier":
			c.Name = p.text(child)
		case "type_parameters":
			c.TypeParams = p.parseTypeParams(child)
		case "class_heritage":
			c.Extends, c.Implements = p.parseHeritage(child)
		case "class_body":
			c.Members = p.parseBody(child)
		}
	}
	return c
}

// parseHeritage splits a class heritage into extends and implements
// clauses, preserving source order inside each.
func (p *treeParser) parseHeritage(node *sitter.Node) (extends, implements []decl.Type) {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "extends_clause":
			extends = p.parseHeritageTypes(child)
		case "implements_clause":
			implements = p.parseHeritageTypes(child)
		}
	}
	return
}

func (p *treeParser) parseHeritageTypes(node *sitter.Node) []decl.Type {
	var types []decl.Type
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "extends", "implements", ",":
		default:
			types = append(types, p.parseType(child))
		}
	}
	return types
}

func (p *treeParser) parseInterface(node *sitter.Node) *decl.Interface {
	i := &decl.Interface{}
	for c := 0; c < int(node.ChildCount()); c++ {
		child := node.Child(c)
		switch child.Type() {
		case "type_identifier":
			i.Name = p.text(child)
		case "type_parameters":
			i.TypeParams = p.parseTypeParams(child)
		case "extends_type_clause", "extends_clause":
			i.Extends = p.parseHeritageTypes(child)
		case "interface_body", "object_type":
			i.Members = p.parseBody(child)
		}
	}
	return i
}

func (p *treeParser) parseEnum(node *sitter.Node) *decl.Enum {
	e := &decl.Enum{}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "identifier":
			e.Name = p.text(child)
		case "enum_body":
			e.Members = p.parseEnumBody(child)
		}
	}
	return e
}

func (p *treeParser) parseEnumBody(node *sitter.Node) []decl.EnumMember {
	var members []decl.EnumMember
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "property_identifier":
			members = append(members, decl.EnumMember{Name: p.text(child)})
		case "enum_assignment":
			var m decl.EnumMember
			for j := 0; j < int(child.ChildCount()); j++ {
				gc := child.Child(j)
				switch gc.Type() {
				case "property_identifier":
					m.Name = p.text(gc)
				case "=":
				default:
					m.Value = p.text(gc)
				}
			}
			if m.Name != "" {
				members = append(members, m)
			}
		}
	}
	return members
}

func (p *treeParser) parseTypeAlias(node *sitter.Node) *decl.TypeAlias {
	a := &decl.TypeAlias{}
	seenEq := false
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "type", ";":
		case "type_identifier":
			if a.Name == "" && !seenEq {
				a.Name = p.text(child)
			} else if seenEq && a.Type == nil {
				a.Type = p.parseType(child)
			}
		case "type_parameters":
			a.TypeParams = p.parseTypeParams(child)
		case "=":
			seenEq = true
		default:
			if seenEq && a.Type == nil {
				a.Type = p.parseType(child)
			}
		}
	}
	return a
}

func (p *treeParser) parseFunc(node *sitter.Node) *decl.Func {
	f := &decl.Func{}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "identifier":
			f.Name = p.text(child)
		case "type_parameters":
			f.TypeParams = p.parseTypeParams(child)
		case "formal_parameters":
			f.Params = p.parseParams(child)
		case "type_annotation":
			f.Return = p.parseTypeAnnotation(child)
		}
	}
	return f
}

func (p *treeParser) parseVarStmt(node *sitter.Node, isConst bool, out *[]decl.Stmt) {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != "variable_declarator" {
			continue
		}
		v := &decl.Var{Const: isConst}
		for j := 0; j < int(child.ChildCount()); j++ {
			gc := child.Child(j)
			switch gc.Type() {
			case "identifier":
				v.Name = p.text(gc)
			case "type_annotation":
				v.Type = p.parseTypeAnnotation(gc)
			}
		}
		if v.Name != "" {
			*out = append(*out, v)
		}
	}
}

func (p *treeParser) parseTypeParams(node *sitter.Node) []string {
	var params []string
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != "type_parameter" {
			continue
		}
		// Constraints and defaults have no Scala rendering; only the
		// parameter name survives.
		for j := 0; j < int(child.ChildCount()); j++ {
			gc := child.Child(j)
			if gc.Type() == "type_identifier" {
				params = append(params, p.text(gc))
				break
			}
		}
	}
	return params
}

func (p *treeParser) hasChild(node *sitter.Node, nodeType string) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		if node.Child(i).Type() == nodeType {
			return true
		}
	}
	return false
}

func stripQuotes(s string) string {
	return strings.Trim(s, "\"'`")
}
