package scalagen

import (
	"fmt"
	"strings"
)

const indentUnit = "  "

// Writer is the append-only output buffer for one conversion. It owns
// the current indentation level; Block is the only way to change it, so
// every opened brace is closed on every exit path.
type Writer struct {
	sb     strings.Builder
	indent int
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Line writes one indented line.
func (w *Writer) Line(s string) {
	if s == "" {
		w.sb.WriteByte('\n')
		return
	}
	for i := 0; i < w.indent; i++ {
		w.sb.WriteString(indentUnit)
	}
	w.sb.WriteString(s)
	w.sb.WriteByte('\n')
}

// Linef writes one indented formatted line.
func (w *Writer) Linef(format string, args ...interface{}) {
	w.Line(fmt.Sprintf(format, args...))
}

// Blank writes an empty line.
func (w *Writer) Blank() {
	w.sb.WriteByte('\n')
}

// Block writes `header {`, runs body one level deeper, then writes the
// matching `}`.
func (w *Writer) Block(header string, body func()) {
	w.Linef("%s {", header)
	w.indent++
	body()
	w.indent--
	w.Line("}")
}

// String returns the accumulated output.
func (w *Writer) String() string {
	return w.sb.String()
}
