package scalagen

import (
	"strings"

	"github.com/nguyenyou/scala-js-ts-importer/decl"
)

// ScopeKind tells the member renderer what encloses the member, which
// decides whether the external-body marker is emitted.
type ScopeKind int

const (
	// ScopeInterface is the body of a @js.native trait.
	ScopeInterface ScopeKind = iota
	// ScopeClass is the body of a concrete facade class.
	ScopeClass
	// ScopeAbstractClass is the body of an abstract facade class; its
	// members carry no body marker.
	ScopeAbstractClass
	// ScopeObject is the body of a companion or container object.
	ScopeObject
)

// nativeBody is the marker meaning "implemented externally, body
// supplied by the runtime".
const nativeBody = " = js.native"

// overriddenMethods are well-known base methods; a member matching one
// of these names must carry the override modifier.
var overriddenMethods = map[string]bool{
	"toString": true,
	"clone":    true,
}

// renderMember converts one declaration-tree member into zero or more
// output lines. Private and protected members render to nothing, and
// static members are partitioned out by the caller before this point,
// so renderMember never sees one.
func renderMember(m decl.Member, scope ScopeKind) []string {
	switch m := m.(type) {
	case *decl.Property:
		return renderProperty(m, scope)
	case *decl.Method:
		return renderMethod(m, scope)
	case *decl.IndexSig:
		return renderIndexSig(m, scope)
	default:
		return nil
	}
}

// emitMember writes the rendered lines of one member into the current
// block. It never recurses into sibling members.
func emitMember(w *Writer, m decl.Member, scope ScopeKind) {
	for _, line := range renderMember(m, scope) {
		w.Line(line)
	}
}

func body(scope ScopeKind) string {
	if scope == ScopeAbstractClass {
		return ""
	}
	return nativeBody
}

func renderProperty(p *decl.Property, scope ScopeKind) []string {
	if p.Visibility != decl.Public {
		return nil
	}
	keyword := "var"
	if p.Readonly {
		keyword = "def"
	}
	return []string{keyword + " " + Sanitize(p.Name) + ": " + propertyType(p) + body(scope)}
}

// propertyType maps a property's declared type; absent annotations
// degrade to the universal dynamic type.
func propertyType(p *decl.Property) string {
	if p.Type == nil {
		return anyType
	}
	return MapType(p.Type)
}

func renderMethod(m *decl.Method, scope ScopeKind) []string {
	if m.Visibility != decl.Public {
		return nil
	}
	ret := "Unit"
	if m.Return != nil {
		ret = MapType(m.Return)
	}
	keyword := "def"
	if overriddenMethods[m.Name] {
		keyword = "override def"
	}
	return []string{keyword + " " + Sanitize(m.Name) + typeParamList(m.TypeParams) +
		"(" + renderParams(m.Params) + "): " + ret + body(scope)}
}

// renderParams renders a parameter list. Optional parameters get a
// placeholder default because the facade binding style has no optional
// positional parameters; rest parameters unwrap one level of the
// mapped array type into the variadic form.
func renderParams(params []decl.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, renderParam(p))
	}
	return strings.Join(parts, ", ")
}

func renderParam(p decl.Param) string {
	typ := anyType
	if p.Type != nil {
		typ = MapType(p.Type)
	}
	switch {
	case p.Rest:
		return Sanitize(p.Name) + ": " + unwrapArray(typ) + "*"
	case p.Optional:
		return Sanitize(p.Name) + ": " + typ + " = ???"
	default:
		return Sanitize(p.Name) + ": " + typ
	}
}

// unwrapArray strips one js.Array level from a mapped type expression.
func unwrapArray(typ string) string {
	if strings.HasPrefix(typ, "js.Array[") && strings.HasSuffix(typ, "]") {
		return typ[len("js.Array[") : len(typ)-1]
	}
	return typ
}

// renderIndexSig emits the subscript operator-overload pair: a read
// accessor always, a write accessor unless the signature is read-only.
func renderIndexSig(s *decl.IndexSig, scope ScopeKind) []string {
	key := Sanitize(s.KeyName)
	keyType := MapType(s.KeyType)
	valType := MapType(s.Value)
	lines := []string{
		"@JSBracketAccess",
		"def apply(" + key + ": " + keyType + "): " + valType + body(scope),
	}
	if !s.Readonly {
		lines = append(lines,
			"@JSBracketAccess",
			"def update("+key+": "+keyType+", v: "+valType+"): Unit"+body(scope))
	}
	return lines
}

func typeParamList(params []string) string {
	if len(params) == 0 {
		return ""
	}
	return "[" + strings.Join(params, ", ") + "]"
}
