package naming

import "strings"

// LegalizeName filters s down to the runes satisfying IsIdentifierPart,
// additionally requiring the first retained rune to satisfy IsIdentifierStart:
// leading non-start runes (for example digits) are dropped outright rather
// than filtered the way interior runes are. The result may be empty.
func LegalizeName(s string) string {
	var b strings.Builder
	started := false
	for _, r := range s {
		if !started {
			if IsIdentifierStart(r) {
				b.WriteRune(r)
				started = true
			}
			continue
		}
		if IsIdentifierPart(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// legalizeParts filters to identifier-part runes without the leading-rune
// rule. This is the per-word legalizer for the combining styles: digit runs
// must survive as words ("top10" keeps its "10"), and the identifier-start
// constraint is enforced once on the combined result, by underscore injection.
func legalizeParts(s string) string {
	var b strings.Builder
	for _, r := range s {
		if IsIdentifierPart(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TypeNameStyle produces a PascalCase identifier from an arbitrary source
// string: "dark-red" becomes "DarkRed", "HTTP status" becomes "HTTPStatus".
// The result is never empty and always begins with an identifier-start rune.
func TypeNameStyle(s string) string {
	return CombineWords(SplitIntoWords(s), legalizeParts,
		FirstUpper, FirstUpper, AllUpper, AllUpper, "", IsIdentifierStart)
}

// CamelCaseStyle produces a camelCase identifier: "DarkRed" becomes
// "darkRed". Acronym words after the first keep their capitals.
func CamelCaseStyle(s string) string {
	return CombineWords(SplitIntoWords(s), legalizeParts,
		AllLower, FirstUpper, AllLower, AllUpper, "", IsIdentifierStart)
}
