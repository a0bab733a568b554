package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/nguyenyou/scala-js-ts-importer/decl"
)

// parseTypeAnnotation unwraps `: T` to T.
func (p *treeParser) parseTypeAnnotation(node *sitter.Node) decl.Type {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != ":" {
			return p.parseType(child)
		}
	}
	return &decl.Bad{NodeType: "empty_annotation"}
}

// parseType lowers one type-system CST node. Unmodeled kinds become
// decl.Bad, which the type mapper degrades to the universal dynamic
// type — lowering is total over syntactically valid input.
func (p *treeParser) parseType(node *sitter.Node) decl.Type {
	switch node.Type() {
	case "predefined_type":
		return &decl.Prim{Name: p.text(node)}

	case "type_identifier", "identifier":
		return &decl.Ref{Name: p.text(node)}

	case "nested_type_identifier", "nested_identifier", "member_expression":
		return &decl.Ref{Name: p.text(node)}

	case "generic_type":
		return p.parseGenericType(node)

	case "union_type":
		u := &decl.Union{}
		p.flattenVariants(node, "union_type", "|", &u.Members)
		return u

	case "intersection_type":
		in := &decl.Intersection{}
		p.flattenVariants(node, "intersection_type", "&", &in.Members)
		return in

	case "array_type":
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(i)
			if child.Type() != "[" && child.Type() != "]" {
				return &decl.Array{Elem: p.parseType(child)}
			}
		}
		return &decl.Bad{NodeType: "array_type"}

	case "tuple_type":
		t := &decl.Tuple{}
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(i)
			switch child.Type() {
			case "[", "]", ",":
			default:
				t.Elems = append(t.Elems, p.parseType(child))
			}
		}
		return t

	case "function_type":
		return p.parseFunctionType(node)

	case "parenthesized_type":
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(i)
			if child.Type() != "(" && child.Type() != ")" {
				return &decl.Paren{Inner: p.parseType(child)}
			}
		}
		return &decl.Bad{NodeType: "parenthesized_type"}

	case "object_type":
		return &decl.Object{Members: p.parseBody(node)}

	case "literal_type":
		return p.parseLiteralType(node)

	case "index_type_query":
		// keyof T
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(i)
			if child.Type() != "keyof" {
				return &decl.Keyof{Operand: p.parseType(child)}
			}
		}
		return &decl.Keyof{Operand: &decl.Bad{NodeType: "index_type_query"}}

	case "readonly_type":
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(i)
			if child.Type() != "readonly" {
				return p.parseType(child)
			}
		}
		return &decl.Bad{NodeType: "readonly_type"}

	case "optional_type", "rest_type":
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(i)
			if child.Type() != "?" && child.Type() != "..." {
				return p.parseType(child)
			}
		}
		return &decl.Bad{NodeType: node.Type()}

	case "null":
		return &decl.Prim{Name: "null"}

	case "undefined":
		return &decl.Prim{Name: "undefined"}

	default:
		// type_query, lookup_type, conditional_type, mapped types,
		// template literal types, constructor types and anything newer.
		return &decl.Bad{NodeType: node.Type()}
	}
}

func (p *treeParser) parseGenericType(node *sitter.Node) decl.Type {
	ref := &decl.Ref{}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "type_identifier", "nested_type_identifier":
			ref.Name = p.text(child)
		case "type_arguments":
			for j := 0; j < int(child.ChildCount()); j++ {
				gc := child.Child(j)
				switch gc.Type() {
				case "<", ">", ",":
				default:
					ref.Args = append(ref.Args, p.parseType(gc))
				}
			}
		}
	}
	if ref.Name == "" {
		return &decl.Bad{NodeType: "generic_type"}
	}
	return ref
}

func (p *treeParser) parseFunctionType(node *sitter.Node) decl.Type {
	f := &decl.Fun{}
	arrowSeen := false
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "formal_parameters":
			f.Params = p.parseParams(child)
		case "=>":
			arrowSeen = true
		default:
			if arrowSeen && f.Return == nil {
				f.Return = p.parseType(child)
			}
		}
	}
	return f
}

func (p *treeParser) parseLiteralType(node *sitter.Node) decl.Type {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "string", "template_string":
			return &decl.StringLit{Value: stripQuotes(p.text(child))}
		case "number":
			return &decl.NumberLit{Raw: p.text(child)}
		case "unary_expression":
			// Negative numeric literal.
			return &decl.NumberLit{Raw: p.text(child)}
		case "true":
			return &decl.BoolLit{Value: true}
		case "false":
			return &decl.BoolLit{Value: false}
		case "null":
			return &decl.Prim{Name: "null"}
		case "undefined":
			return &decl.Prim{Name: "undefined"}
		}
	}
	return &decl.Bad{NodeType: "literal_type"}
}

// flattenVariants flattens the binary union/intersection spine into a
// single member list, preserving source order.
func (p *treeParser) flattenVariants(node *sitter.Node, spine, op string, out *[]decl.Type) {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case op:
		case spine:
			p.flattenVariants(child, spine, op, out)
		default:
			*out = append(*out, p.parseType(child))
		}
	}
}
