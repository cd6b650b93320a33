// Package naming turns arbitrary source strings (JSON keys, schema titles,
// possibly empty or symbol-laden) into legal, consistently styled identifiers,
// and allocates collision-free names scoped to one generation run.
package naming

import "unicode"

// IsIdentifierStart reports whether r may begin an identifier: any Unicode
// alphabetic code point, or the ASCII underscore.
func IsIdentifierStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// IsIdentifierPart reports whether r may continue an identifier: anything
// IsIdentifierStart accepts, plus decimal digits (Nd), connector punctuation
// (Pc), and combining marks (Mn, Mc).
//
// These two predicates are the sole legality oracle; no other code inspects
// raw code points.
func IsIdentifierPart(r rune) bool {
	return IsIdentifierStart(r) ||
		unicode.Is(unicode.Nd, r) ||
		unicode.Is(unicode.Pc, r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Mc, r)
}
