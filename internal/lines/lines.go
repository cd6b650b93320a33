// Package lines is a minimal indented-line source writer. It is the entire
// emission substrate: renderers append whole lines and push/pop indentation,
// and the writer guarantees the byte output is a pure function of the call
// sequence.
package lines

import (
	"bytes"
	"fmt"
	"strings"
)

// Writer accumulates source text line by line.
type Writer struct {
	buf    bytes.Buffer
	indent int
	unit   string
}

// NewWriter returns a writer indenting with four spaces per level.
func NewWriter() *Writer {
	return &Writer{unit: "    "}
}

// Line appends one indented line.
func (w *Writer) Line(format string, args ...any) {
	if w.indent > 0 {
		w.buf.WriteString(strings.Repeat(w.unit, w.indent))
	}
	fmt.Fprintf(&w.buf, format, args...)
	w.buf.WriteByte('\n')
}

// Blank appends an empty line.
func (w *Writer) Blank() {
	w.buf.WriteByte('\n')
}

// Raw appends pre-formatted text verbatim, without indentation.
func (w *Writer) Raw(s string) {
	w.buf.WriteString(s)
}

// Indented runs fn with indentation one level deeper.
func (w *Writer) Indented(fn func()) {
	w.indent++
	fn()
	w.indent--
}

// Bytes returns the accumulated source.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }
