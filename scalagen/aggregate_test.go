package scalagen

import (
	"strings"
	"testing"

	"github.com/nguyenyou/scala-js-ts-importer/decl"
)

// =============================================================================
// Companion container synthesis
// =============================================================================

func TestFlushFileScopeCompanion(t *testing.T) {
	out := emit(t, []decl.Stmt{
		&decl.Func{Name: "greet", Params: []decl.Param{
			{Name: "who", Type: &decl.Prim{Name: "string"}},
		}, Return: &decl.Prim{Name: "string"}},
		&decl.Var{Name: "version", Type: &decl.Prim{Name: "string"}},
		&decl.TypeAlias{Name: "Id", Type: &decl.Prim{Name: "number"}},
	})

	mustContain(t, out,
		"@JSGlobalScope",
		"object Lib extends js.Object {",
		"type Id = Double",
		"var version: String = js.native",
		"def greet(who: String): String = js.native",
	)
}

func TestFlushModuleScopeCompanion(t *testing.T) {
	out := emit(t, []decl.Stmt{
		&decl.Module{Name: "util", Body: []decl.Stmt{
			&decl.Func{Name: "now", Return: &decl.Prim{Name: "number"}},
		}},
	})

	mustContain(t, out,
		`@JSGlobal("util")`,
		"object util extends js.Object {",
		"def now(): Double = js.native",
	)
	mustNotContain(t, out, "@JSGlobalScope")
}

func TestFlushNestedModulePath(t *testing.T) {
	out := emit(t, []decl.Stmt{
		&decl.Module{Name: "a", Body: []decl.Stmt{
			&decl.Module{Name: "b", Body: []decl.Stmt{
				&decl.Var{Name: "flag", Type: &decl.Prim{Name: "boolean"}},
			}},
		}},
	})
	mustContain(t, out, `@JSGlobal("a.b")`, "object b extends js.Object {")
}

func TestFlushEmptyScopeOmitsCompanion(t *testing.T) {
	out := emit(t, []decl.Stmt{
		&decl.Interface{Name: "OnlyTypes"},
	})
	mustNotContain(t, out, "@JSGlobalScope", "object Lib")
}

func TestFlushConstRendersReadonly(t *testing.T) {
	out := emit(t, []decl.Stmt{
		&decl.Var{Name: "PI", Const: true, Type: &decl.Prim{Name: "number"}},
		&decl.Var{Name: "counter", Type: &decl.Prim{Name: "number"}},
	})
	mustContain(t, out,
		"def PI: Double = js.native",
		"var counter: Double = js.native",
	)
}

func TestFlushSanitizesNames(t *testing.T) {
	out := emit(t, []decl.Stmt{
		&decl.Func{Name: "val"},
		&decl.Var{Name: "with", Type: &decl.Prim{Name: "string"}},
	})
	mustContain(t, out,
		"def `val`(): Unit = js.native",
		"var `with`: String = js.native",
	)
}

// =============================================================================
// Export assignments
// =============================================================================

// A function with no matching export assignment gets its callable
// binding and nothing else.
func TestExportedFunctionWithoutAssignment(t *testing.T) {
	out := emit(t, []decl.Stmt{
		&decl.Func{Name: "solo", Return: &decl.Prim{Name: "void"}},
	})
	if n := strings.Count(out, "def solo(): Unit = js.native"); n != 1 {
		t.Errorf("binding emitted %d times, want 1\noutput:\n%s", n, out)
	}
}

// An export assignment forwards its target, and the forwarded binding
// collapses with the function's own identical one.
func TestExportAssignmentForwardsOnce(t *testing.T) {
	out := emit(t, []decl.Stmt{
		&decl.Func{Name: "main", Return: &decl.Prim{Name: "void"}},
		&decl.ExportAssign{Target: "main"},
	})
	if n := strings.Count(out, "def main(): Unit = js.native"); n != 1 {
		t.Errorf("binding emitted %d times, want 1\noutput:\n%s", n, out)
	}
}

func TestExportAssignmentUnresolvedTargetIgnored(t *testing.T) {
	out := emit(t, []decl.Stmt{
		&decl.Func{Name: "known"},
		&decl.ExportAssign{Target: "unknown"},
	})
	mustContain(t, out, "def known(): Unit = js.native")
	mustNotContain(t, out, "unknown")
}

func TestAliasWithTypeParams(t *testing.T) {
	out := emit(t, []decl.Stmt{
		&decl.TypeAlias{
			Name:       "Pair",
			TypeParams: []string{"A", "B"},
			Type: &decl.Tuple{Elems: []decl.Type{
				&decl.Ref{Name: "A"}, &decl.Ref{Name: "B"},
			}},
		},
	})
	mustContain(t, out, "type Pair[A, B] = js.Tuple2[A, B]")
}

func TestPackageTail(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"lib", "lib"},
		{"a.b.c", "c"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := packageTail(tt.input); got != tt.expected {
			t.Errorf("packageTail(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
