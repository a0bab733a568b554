package scalagen

import (
	"strings"

	"github.com/nguyenyou/scala-js-ts-importer/decl"
)

// anyType is the universal dynamic type every unsupported construct
// degrades to. The output must always compile even when fidelity is
// lost, so MapType is total and never fails.
const anyType = "js.Any"

// primMapping maps TypeScript predefined type keywords to Scala types.
var primMapping = map[string]string{
	"string":    "String",
	"boolean":   "Boolean",
	"number":    "Double",
	"void":      "Unit",
	"undefined": "Unit",
	"null":      "Null",
	"never":     "Nothing",
	"any":       "js.Any",
	"unknown":   "js.Any",
	"object":    "js.Object",
	"symbol":    "js.Symbol",
	"bigint":    "js.BigInt",
}

// genericMapping maps parametrized references to known built-in
// generics onto their Scala.js equivalents. Type arguments propagate.
var genericMapping = map[string]string{
	"Array":         "js.Array",
	"ReadonlyArray": "js.Array",
	"Promise":       "js.Promise",
	"PromiseLike":   "js.Thenable",
	"Thenable":      "js.Thenable",
}

// refMapping maps bare references to built-in runtime types, including
// the binary and typed-array family.
var refMapping = map[string]string{
	"Object":            "js.Object",
	"Function":          "js.Function",
	"RegExp":            "js.RegExp",
	"Date":              "js.Date",
	"Symbol":            "js.Symbol",
	"Error":             "js.Error",
	"ArrayBuffer":       "js.typedarray.ArrayBuffer",
	"DataView":          "js.typedarray.DataView",
	"Int8Array":         "js.typedarray.Int8Array",
	"Uint8Array":        "js.typedarray.Uint8Array",
	"Uint8ClampedArray": "js.typedarray.Uint8ClampedArray",
	"Int16Array":        "js.typedarray.Int16Array",
	"Uint16Array":       "js.typedarray.Uint16Array",
	"Int32Array":        "js.typedarray.Int32Array",
	"Uint32Array":       "js.typedarray.Uint32Array",
	"Float32Array":      "js.typedarray.Float32Array",
	"Float64Array":      "js.typedarray.Float64Array",
}

// tuple types above this arity degrade to js.Array[js.Any]
const maxTupleArity = 8

// MapType maps one type node to a Scala type expression. It is pure:
// equal nodes always map to the textually identical expression, which
// the union logic relies on for de-duplication.
func MapType(t decl.Type) string {
	switch t := t.(type) {
	case *decl.Prim:
		if mapped, ok := primMapping[t.Name]; ok {
			return mapped
		}
		return anyType

	case *decl.Ref:
		return mapRef(t)

	case *decl.StringLit:
		return "String"

	case *decl.NumberLit:
		if t.Fractional() {
			return "Double"
		}
		return "Int"

	case *decl.BoolLit:
		return "Boolean"

	case *decl.Union:
		return mapUnion(t)

	case *decl.Intersection:
		return strings.Join(dedupe(mapAll(t.Members)), " with ")

	case *decl.Array:
		return "js.Array[" + MapType(t.Elem) + "]"

	case *decl.Fun:
		return mapFun(t)

	case *decl.Keyof:
		// No attempt to enumerate literal key names.
		return "String"

	case *decl.Paren:
		return MapType(t.Inner)

	case *decl.Object:
		// An anonymous type literal in type position degrades; a type
		// literal that types a named interface member is expanded into
		// a nested trait by the declaration emitter instead.
		return anyType

	case *decl.Tuple:
		return mapTuple(t)

	default:
		// decl.Bad and anything a future parser adds.
		return anyType
	}
}

func mapRef(r *decl.Ref) string {
	if len(r.Args) > 0 {
		name := r.Name
		if mapped, ok := genericMapping[name]; ok {
			name = mapped
		}
		return name + "[" + strings.Join(mapAll(r.Args), ", ") + "]"
	}
	if mapped, ok := refMapping[r.Name]; ok {
		return mapped
	}
	return r.Name
}

func mapFun(f *decl.Fun) string {
	ret := "Unit"
	if f.Return != nil {
		ret = MapType(f.Return)
	}
	if len(f.Params) > 2 {
		// Fidelity loss accepted: no arity-specific generic beyond 2.
		return "js.Function"
	}
	args := make([]string, 0, len(f.Params)+1)
	for _, p := range f.Params {
		args = append(args, MapType(p.Type))
	}
	args = append(args, ret)
	switch len(f.Params) {
	case 0:
		return "js.Function0[" + ret + "]"
	case 1:
		return "js.Function1[" + strings.Join(args, ", ") + "]"
	default:
		return "js.Function2[" + strings.Join(args, ", ") + "]"
	}
}

func mapTuple(t *decl.Tuple) string {
	if len(t.Elems) < 2 || len(t.Elems) > maxTupleArity {
		return "js.Array[js.Any]"
	}
	return "js.Tuple" + itoa(len(t.Elems)) + "[" + strings.Join(mapAll(t.Elems), ", ") + "]"
}

// mapUnion applies the union-collapsing rules. The heuristics are
// best-effort simplifications; downstream fixtures depend on the exact
// behavior, so they must not be "improved".
func mapUnion(u *decl.Union) string {
	if s, ok := collapseLiteralUnion(u.Members); ok {
		return s
	}
	members := dedupe(mapAll(u.Members))
	// {T, Null, Unit} renders with the payload type first.
	if len(members) == 3 && containsString(members, "Null") && containsString(members, "Unit") {
		for _, m := range members {
			if m != "Null" && m != "Unit" {
				return m + " | Null | Unit"
			}
		}
	}
	return strings.Join(members, " | ")
}

// collapseLiteralUnion handles unions made entirely of literals of one
// primitive category: all string literals collapse to String, all
// numeric literals collapse to Int unless any carries a decimal point.
func collapseLiteralUnion(members []decl.Type) (string, bool) {
	allString, allNumber := true, true
	fractional := false
	for _, m := range members {
		switch m := m.(type) {
		case *decl.StringLit:
			allNumber = false
		case *decl.NumberLit:
			allString = false
			if m.Fractional() {
				fractional = true
			}
		default:
			return "", false
		}
	}
	switch {
	case allString:
		return "String", true
	case allNumber && fractional:
		return "Double", true
	case allNumber:
		return "Int", true
	}
	return "", false
}

func mapAll(types []decl.Type) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, MapType(t))
	}
	return out
}

// dedupe drops duplicates by textual identity preserving first-seen
// order.
func dedupe(exprs []string) []string {
	seen := make(map[string]bool, len(exprs))
	out := exprs[:0]
	for _, e := range exprs {
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	return out
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func itoa(n int) string {
	// Tuple arities are single digit.
	return string(rune('0' + n))
}
