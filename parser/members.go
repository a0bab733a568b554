package parser

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/nguyenyou/scala-js-ts-importer/decl"
)

// parseBody lowers a class_body, interface_body or object_type into
// members. Construct and call signatures have no member rendering and
// are skipped here, as are computed property names.
func (p *treeParser) parseBody(node *sitter.Node) []decl.Member {
	var members []decl.Member
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "method_definition", "method_signature", "abstract_method_signature":
			if m := p.parseMethod(child); m != nil {
				members = append(members, m)
			}
		case "public_field_definition", "property_signature":
			if prop := p.parseProperty(child); prop != nil {
				members = append(members, prop)
			}
		case "index_signature":
			if sig := p.parseIndexSig(child); sig != nil {
				members = append(members, sig)
			}
		}
	}
	return members
}

func (p *treeParser) parseMethod(node *sitter.Node) *decl.Method {
	m := &decl.Method{Visibility: decl.Public}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "accessibility_modifier":
			m.Visibility = parseVisibility(p.text(child))
		case "static":
			m.Static = true
		case "abstract":
			m.Abstract = true
		case "property_identifier", "identifier":
			m.Name = p.text(child)
		case "string":
			m.Name = stripQuotes(p.text(child))
		case "type_parameters":
			m.TypeParams = p.parseTypeParams(child)
		case "formal_parameters":
			m.Params = p.parseParams(child)
		case "type_annotation":
			m.Return = p.parseTypeAnnotation(child)
		}
	}
	if m.Name == "" {
		return nil
	}
	if m.Name == "constructor" {
		m.IsCtor = true
	}
	return m
}

func (p *treeParser) parseProperty(node *sitter.Node) *decl.Property {
	prop := &decl.Property{Visibility: decl.Public}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "accessibility_modifier":
			prop.Visibility = parseVisibility(p.text(child))
		case "static":
			prop.Static = true
		case "readonly":
			prop.Readonly = true
		case "abstract":
			prop.Abstract = true
		case "?":
			prop.Optional = true
		case "property_identifier", "identifier":
			prop.Name = p.text(child)
		case "string":
			prop.Name = stripQuotes(p.text(child))
		case "number":
			prop.Name = p.text(child)
		case "type_annotation":
			prop.Type = p.parseTypeAnnotation(child)
		}
	}
	if prop.Name == "" {
		return nil
	}
	return prop
}

// parseIndexSig lowers `[key: K]: V`. The nodes between the brackets
// carry the key name and key type; the trailing annotation carries the
// value type.
func (p *treeParser) parseIndexSig(node *sitter.Node) *decl.IndexSig {
	sig := &decl.IndexSig{}
	inBrackets := false
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "readonly":
			sig.Readonly = true
		case "[":
			inBrackets = true
		case "]":
			inBrackets = false
		case ":", ",":
		case "identifier":
			if inBrackets {
				sig.KeyName = p.text(child)
			}
		case "type_annotation":
			if inBrackets {
				sig.KeyType = p.parseTypeAnnotation(child)
			} else {
				sig.Value = p.parseTypeAnnotation(child)
			}
		default:
			if inBrackets && sig.KeyType == nil {
				sig.KeyType = p.parseType(child)
			}
		}
	}
	if sig.KeyName == "" {
		sig.KeyName = "key"
	}
	if sig.KeyType == nil || sig.Value == nil {
		return nil
	}
	return sig
}

// parseParams lowers a formal parameter list. Destructuring patterns
// get a synthetic positional name; a `this` parameter types the
// receiver and produces no facade parameter.
func (p *treeParser) parseParams(node *sitter.Node) []decl.Param {
	var params []decl.Param
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "required_parameter", "optional_parameter", "rest_parameter":
			param, ok := p.parseParam(child)
			if !ok {
				continue
			}
			param.Optional = child.Type() == "optional_parameter"
			if child.Type() == "rest_parameter" {
				param.Rest = true
			}
			if param.Name == "" {
				param.Name = fmt.Sprintf("arg%d", len(params))
			}
			params = append(params, param)
		}
	}
	return params
}

func (p *treeParser) parseParam(node *sitter.Node) (decl.Param, bool) {
	var param decl.Param
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "identifier":
			param.Name = p.text(child)
		case "this":
			return decl.Param{}, false
		case "rest_pattern":
			param.Rest = true
			for j := 0; j < int(child.ChildCount()); j++ {
				gc := child.Child(j)
				if gc.Type() == "identifier" {
					param.Name = p.text(gc)
				}
			}
		case "object_pattern", "array_pattern":
			// Synthetic name assigned by the caller.
		case "type_annotation":
			param.Type = p.parseTypeAnnotation(child)
		}
	}
	return param, true
}

func parseVisibility(text string) decl.Visibility {
	switch text {
	case "private":
		return decl.Private
	case "protected":
		return decl.Protected
	default:
		return decl.Public
	}
}
