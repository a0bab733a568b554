// Package scalagen converts a parsed TypeScript declaration tree into
// Scala.js facade source.
//
// The conversion is one synchronous depth-first traversal: declaration
// statements are dispatched by kind, members are rendered against their
// enclosing scope, and every type annotation flows through MapType,
// which is total — unsupported constructs degrade to the universal
// dynamic type so that the output always compiles. Per-scope type
// aliases, free functions and variables are aggregated into companion
// container objects because Scala has no free-standing namespace-level
// bindings.
//
// A conversion owns its writer and collections exclusively; concurrent
// conversions need no coordination.
package scalagen

import (
	"github.com/nguyenyou/scala-js-ts-importer/decl"
	"github.com/nguyenyou/scala-js-ts-importer/parser"
)

// Convert parses declaration source text and emits the facade source
// for it under the given package name. A parse failure is returned as a
// structured error wrapping errors.ErrParse with no partial output;
// everything that parses converts without error.
func Convert(source []byte, packageName string) (string, error) {
	file, err := parser.Parse(source)
	if err != nil {
		return "", err
	}
	return Emit(file, packageName), nil
}

// Emit writes the facade for an already-parsed declaration tree. The
// output frame is fixed: a leading blank line, the four runtime-interop
// imports, the package block holding one emitted unit per top-level
// declaration followed by the file-scope companion, and a trailing
// blank line (two when the file declares any namespace).
func Emit(file *decl.SourceFile, packageName string) string {
	w := NewWriter()
	w.Blank()
	w.Line("import scala.scalajs.js")
	w.Line("import scala.scalajs.js.annotation._")
	w.Line("import scala.scalajs.js.typedarray._")
	w.Line("import scala.scalajs.js.|")
	w.Blank()

	e := &emitter{w: w}
	w.Block("package "+SanitizePackage(packageName), func() {
		col := newExportCollection()
		e.emitStmts(file.Stmts, nil, col)
		e.flush(col, nil, packageName)
	})

	w.Blank()
	if e.hasModules {
		w.Blank()
	}
	return w.String()
}
