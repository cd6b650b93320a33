// Package javascript renders a type graph into a self-contained JavaScript
// source artifact: entry points per top-level type, a fixed runtime validator
// interpreting the compiled descriptor table, and an export manifest keyed by
// the original type names.
package javascript

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/typewright/typewright/naming"
)

// QuoteString renders s as a double-quoted JavaScript string literal. Control
// characters and non-BMP code points are escaped as \uXXXX (UTF-16 units);
// printable BMP characters pass through.
func QuoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(escapeStringBody(s))
	b.WriteByte('"')
	return b.String()
}

func escapeStringBody(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			switch {
			case r < 0x20 || !unicode.IsPrint(r):
				writeUnitEscape(&b, r)
			case r > 0xFFFF:
				hi, lo := utf16.EncodeRune(r)
				fmt.Fprintf(&b, `\u%04X\u%04X`, hi, lo)
			default:
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func writeUnitEscape(b *strings.Builder, r rune) {
	if r > 0xFFFF {
		hi, lo := utf16.EncodeRune(r)
		fmt.Fprintf(b, `\u%04X\u%04X`, hi, lo)
		return
	}
	fmt.Fprintf(b, `\u%04X`, r)
}

// PropertyName renders a source key for use as an object-literal key. It
// prefers the literal key, unquoted and unescaped, falling back to a quoted
// string literal when the key cannot serve as a bare identifier: it is empty,
// its first rune is not an identifier start, legalization would change it, or
// escaping it for string-literal syntax would change its value.
//
// Type names must always be legalized because they become bare identifiers;
// property names are usually quoted map keys and only need this treatment
// when used bare.
func PropertyName(key string) string {
	if key == "" {
		return QuoteString(key)
	}
	r, _ := utf8.DecodeRuneInString(key)
	if !naming.IsIdentifierStart(r) {
		return QuoteString(key)
	}
	if naming.LegalizeName(key) != key {
		return QuoteString(key)
	}
	if escapeStringBody(key) != key {
		return QuoteString(key)
	}
	return key
}
