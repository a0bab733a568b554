package scalagen

import (
	"strings"

	"github.com/nguyenyou/scala-js-ts-importer/decl"
)

// exportCollection accumulates the declarations of one scope that have
// no standalone binding form in Scala: namespace-level type aliases,
// free functions, free variables and export assignments. One collection
// is created at scope entry, appended to while visiting the scope's
// direct children, and read exactly once when the scope closes.
type exportCollection struct {
	aliases []*decl.TypeAlias
	funcs   []*decl.Func
	vars    []*decl.Var
	exports []*decl.ExportAssign
}

func newExportCollection() *exportCollection {
	return &exportCollection{}
}

func (c *exportCollection) empty() bool {
	return len(c.aliases) == 0 && len(c.funcs) == 0 &&
		len(c.vars) == 0 && len(c.exports) == 0
}

// flush synthesizes the companion container for a closed scope: an
// object bound to the file's package name (file scope, path empty) or
// to the dotted module path. Nothing is emitted for an empty
// collection.
func (e *emitter) flush(col *exportCollection, path []string, packageName string) {
	if col.empty() {
		return
	}

	e.w.Blank()
	e.w.Line("@js.native")
	var objName string
	if len(path) == 0 {
		e.w.Line("@JSGlobalScope")
		objName = Sanitize(capitalize(packageTail(packageName)))
	} else {
		e.w.Line(`@JSGlobal("` + strings.Join(path, ".") + `")`)
		objName = Sanitize(path[len(path)-1])
	}

	e.w.Block("object "+objName+" extends js.Object", func() {
		seen := make(map[string]bool)
		write := func(lines ...string) {
			key := strings.Join(lines, "\n")
			if seen[key] {
				return
			}
			seen[key] = true
			for _, line := range lines {
				e.w.Line(line)
			}
		}

		for _, a := range col.aliases {
			write("type " + Sanitize(a.Name) + typeParamList(a.TypeParams) + " = " + aliasTarget(a))
		}
		for _, v := range col.vars {
			write(renderVarBinding(v))
		}
		for _, f := range col.funcs {
			write(renderFuncBinding(f))
		}
		// Only direct identifier re-exports are forwarded, resolved
		// against the scope's collected functions. A forwarding binding
		// that renders identically to the function's own is suppressed
		// by the signature de-duplication above.
		for _, exp := range col.exports {
			if f := findFunc(col.funcs, exp.Target); f != nil {
				write(renderFuncBinding(f))
			}
		}
	})
}

func aliasTarget(a *decl.TypeAlias) string {
	if a.Type == nil {
		return anyType
	}
	return MapType(a.Type)
}

// renderVarBinding renders a collected variable: read-only when
// declared constant, mutable otherwise.
func renderVarBinding(v *decl.Var) string {
	keyword := "var"
	if v.Const {
		keyword = "def"
	}
	typ := anyType
	if v.Type != nil {
		typ = MapType(v.Type)
	}
	return keyword + " " + Sanitize(v.Name) + ": " + typ + nativeBody
}

func renderFuncBinding(f *decl.Func) string {
	ret := "Unit"
	if f.Return != nil {
		ret = MapType(f.Return)
	}
	return "def " + Sanitize(f.Name) + typeParamList(f.TypeParams) +
		"(" + renderParams(f.Params) + "): " + ret + nativeBody
}

func findFunc(funcs []*decl.Func, name string) *decl.Func {
	for _, f := range funcs {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// packageTail returns the last dotted segment of a package name.
func packageTail(name string) string {
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		return name[idx+1:]
	}
	return name
}
