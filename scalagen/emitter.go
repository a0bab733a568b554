package scalagen

import (
	"strings"

	"github.com/nguyenyou/scala-js-ts-importer/decl"
)

// emitter drives one depth-first traversal of a declaration tree. It
// owns the output buffer and the namespace path for the duration of a
// single Emit call and is never shared across conversions.
type emitter struct {
	w *Writer

	// hasModules records whether any namespace was emitted; the output
	// frame appends one extra trailing blank line when so.
	hasModules bool
}

// nestedTrait is an anonymous structural type that must be expanded
// into a named nested trait inside a companion object.
type nestedTrait struct {
	name string
	obj  *decl.Object
}

func (e *emitter) emitStmts(stmts []decl.Stmt, path []string, col *exportCollection) {
	for _, s := range stmts {
		e.emitStmt(s, path, col)
	}
}

// emitStmt dispatches on the statement kind. Type aliases, functions
// and export assignments are never emitted in place; they accumulate in
// the enclosing scope's collection and are flushed when it closes.
func (e *emitter) emitStmt(s decl.Stmt, path []string, col *exportCollection) {
	switch s := s.(type) {
	case *decl.Module:
		e.emitModule(s, path)

	case *decl.Class:
		e.emitClass(s, path)

	case *decl.Interface:
		e.emitInterface(s, path)

	case *decl.Enum:
		e.emitEnum(s, path)

	case *decl.TypeAlias:
		col.aliases = append(col.aliases, s)

	case *decl.Var:
		if obj, ok := s.Type.(*decl.Object); ok {
			e.emitVarObject(s, obj, path)
		} else {
			col.vars = append(col.vars, s)
		}

	case *decl.Func:
		col.funcs = append(col.funcs, s)

	case *decl.ExportAssign:
		col.exports = append(col.exports, s)

	case *decl.BadStmt:
		// Unsupported statement kinds degrade to nothing. Deliberate.

	default:
		// Same policy for kinds this emitter predates.
	}
}

// emitModule opens a package block for the namespace, collects its
// scope and flushes the module companion before closing. Ambient
// external-module augmentations (quoted specifiers) are unsupported
// and skipped whole.
func (e *emitter) emitModule(m *decl.Module, path []string) {
	if m.Quoted {
		return
	}
	e.hasModules = true
	childPath := append(append([]string{}, path...), m.Name)
	e.w.Blank()
	e.w.Block("package "+Sanitize(m.Name), func() {
		col := newExportCollection()
		e.emitStmts(m.Body, childPath, col)
		e.flush(col, childPath, "")
	})
}

// jsGlobalAnnotation renders the global-binding marker: the dotted
// runtime path when nested, unqualified when top-level.
func jsGlobalAnnotation(path []string, name string) string {
	if len(path) == 0 {
		return "@JSGlobal"
	}
	return `@JSGlobal("` + strings.Join(path, ".") + "." + name + `")`
}

// resolveHeritage picks the base type and the mixin tail: the first
// extends clause supplies the base; remaining extends and all
// implements clauses append via `with`. With no explicit base the first
// implements-equivalent is promoted.
func resolveHeritage(extends, implements []decl.Type) string {
	all := make([]string, 0, len(extends)+len(implements))
	for _, t := range extends {
		all = append(all, MapType(t))
	}
	for _, t := range implements {
		all = append(all, MapType(t))
	}
	all = dedupe(all)
	if len(all) == 0 {
		return "js.Object"
	}
	return strings.Join(all, " with ")
}

func (e *emitter) emitClass(c *decl.Class, path []string) {
	statics, instance := partitionStatic(c.Members)
	ctors := constructorsOf(instance)

	// A parametrized constructor restricts the primary constructor and
	// re-emits each declared one as a delegating secondary.
	var paramCtors []*decl.Method
	for _, ctor := range ctors {
		if len(ctor.Params) > 0 {
			paramCtors = append(paramCtors, ctor)
		}
	}

	scope := ScopeClass
	keyword := "class"
	if c.Abstract {
		scope = ScopeAbstractClass
		keyword = "abstract class"
	}

	header := keyword + " " + Sanitize(c.Name) + typeParamList(c.TypeParams)
	if len(paramCtors) > 0 {
		header += " protected ()"
	}
	header += " extends " + resolveHeritage(c.Extends, c.Implements)

	e.w.Blank()
	e.w.Line("@js.native")
	e.w.Line(jsGlobalAnnotation(path, c.Name))
	e.w.Block(header, func() {
		for _, ctor := range paramCtors {
			e.w.Linef("def this(%s) = this()", renderParams(ctor.Params))
		}
		for _, m := range instance {
			if method, ok := m.(*decl.Method); ok && method.IsCtor {
				continue
			}
			emitMember(e.w, m, scope)
		}
	})

	if len(statics) > 0 {
		e.w.Blank()
		e.w.Line("@js.native")
		e.w.Line(jsGlobalAnnotation(path, c.Name))
		e.w.Block("object "+Sanitize(c.Name)+" extends js.Object", func() {
			for _, m := range statics {
				emitMember(e.w, m, ScopeObject)
			}
		})
	}
}

// partitionStatic splits members into statics (relocated to the sibling
// companion object) and instance members.
func partitionStatic(members []decl.Member) (statics, instance []decl.Member) {
	for _, m := range members {
		if isStatic(m) {
			statics = append(statics, m)
		} else {
			instance = append(instance, m)
		}
	}
	return
}

func isStatic(m decl.Member) bool {
	switch m := m.(type) {
	case *decl.Property:
		return m.Static
	case *decl.Method:
		return m.Static
	}
	return false
}

func constructorsOf(members []decl.Member) []*decl.Method {
	var ctors []*decl.Method
	for _, m := range members {
		if method, ok := m.(*decl.Method); ok && method.IsCtor && method.Visibility == decl.Public {
			ctors = append(ctors, method)
		}
	}
	return ctors
}

func (e *emitter) emitInterface(i *decl.Interface, path []string) {
	e.w.Blank()
	e.w.Line("@js.native")
	header := "trait " + Sanitize(i.Name) + typeParamList(i.TypeParams) +
		" extends " + resolveHeritage(i.Extends, nil)

	var nested []nestedTrait
	e.w.Block(header, func() {
		nested = e.emitTraitMembers(i.Name, i.Members)
	})

	if len(nested) > 0 {
		e.w.Blank()
		e.w.Block("object "+Sanitize(i.Name), func() {
			e.emitNestedTraits(nested)
		})
	}
}

// emitTraitMembers writes the members of a trait body, suppressing
// duplicate rendered signatures, and returns the anonymous structural
// types that must be expanded as nested traits in the companion.
//
// A property whose declared type is an anonymous type literal is
// rendered against a synthetic nested type name derived by capitalizing
// the property name; the structural members themselves are emitted by
// the caller inside the companion object.
func (e *emitter) emitTraitMembers(owner string, members []decl.Member) []nestedTrait {
	var nested []nestedTrait
	seen := make(map[string]bool)
	for _, m := range members {
		if p, ok := m.(*decl.Property); ok && p.Visibility == decl.Public {
			if obj, ok := p.Type.(*decl.Object); ok {
				nestedName := capitalize(p.Name)
				keyword := "var"
				if p.Readonly {
					keyword = "def"
				}
				line := keyword + " " + Sanitize(p.Name) + ": " +
					Sanitize(owner) + "." + Sanitize(nestedName) + nativeBody
				if !seen[line] {
					seen[line] = true
					e.w.Line(line)
					nested = append(nested, nestedTrait{name: nestedName, obj: obj})
				}
				continue
			}
		}
		lines := renderMember(m, ScopeInterface)
		if len(lines) == 0 {
			continue
		}
		key := strings.Join(lines, "\n")
		if seen[key] {
			continue
		}
		seen[key] = true
		for _, line := range lines {
			e.w.Line(line)
		}
	}
	return nested
}

// emitNestedTraits expands collected anonymous types into nested traits,
// recursing for anonymous types nested inside them.
func (e *emitter) emitNestedTraits(traits []nestedTrait) {
	for idx, nt := range traits {
		if idx > 0 {
			e.w.Blank()
		}
		e.w.Line("@js.native")
		var deeper []nestedTrait
		e.w.Block("trait "+Sanitize(nt.name)+" extends js.Object", func() {
			deeper = e.emitTraitMembers(nt.name, nt.obj.Members)
		})
		if len(deeper) > 0 {
			e.w.Blank()
			e.w.Block("object "+Sanitize(nt.name), func() {
				e.emitNestedTraits(deeper)
			})
		}
	}
}

// emitEnum writes the sealed marker type plus a companion holding one
// externally-implemented binding per member and a subscript lookup
// mapping a member back to its display name.
func (e *emitter) emitEnum(en *decl.Enum, path []string) {
	name := Sanitize(en.Name)
	e.w.Blank()
	e.w.Line("@js.native")
	e.w.Line("sealed trait " + name + " extends js.Object")
	e.w.Blank()
	e.w.Line("@js.native")
	e.w.Line(jsGlobalAnnotation(path, en.Name))
	e.w.Block("object "+name+" extends js.Object", func() {
		for _, m := range en.Members {
			e.w.Linef("var %s: %s = js.native", Sanitize(m.Name), name)
		}
		e.w.Line("@JSBracketAccess")
		e.w.Linef("def apply(value: %s): String = js.native", name)
	})
}

// emitVarObject writes a variable with an anonymous structural type as
// its own container object at its point of occurrence. Member names
// that are numeric or dotted fail the bare-identifier grammar and come
// back backquoted from Sanitize.
func (e *emitter) emitVarObject(v *decl.Var, obj *decl.Object, path []string) {
	e.w.Blank()
	e.w.Line("@js.native")
	e.w.Line(jsGlobalAnnotation(path, v.Name))
	e.w.Block("object "+Sanitize(v.Name)+" extends js.Object", func() {
		for _, m := range obj.Members {
			emitMember(e.w, m, ScopeObject)
		}
	})
}
