package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Word is one unit of a decomposed source string. IsAcronym marks all-caps
// runs and digit runs, which take a distinct capitalization policy when words
// are recombined.
type Word struct {
	Value     string
	IsAcronym bool
}

// WordStyle is a per-word capitalization policy.
type WordStyle func(string) string

// FirstUpper upcases the first rune and downcases the rest.
func FirstUpper(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// AllUpper upcases the whole word.
func AllUpper(s string) string { return strings.ToUpper(s) }

// AllLower downcases the whole word.
func AllLower(s string) string { return strings.ToLower(s) }

// SplitIntoWords decomposes s into words at case transitions, digit runs, and
// separator runes (anything that is neither letter nor digit). The
// decomposition is pure: it is recomputed on each call and holds no state.
//
// An uppercase run followed by a lowercase letter contributes its last rune to
// the following word, so "HTTPServer" splits into "HTTP" and "Server".
func SplitIntoWords(s string) []Word {
	var words []Word
	rs := []rune(s)
	flush := func(start, end int, acronym bool) {
		if end > start {
			words = append(words, Word{Value: string(rs[start:end]), IsAcronym: acronym})
		}
	}
	i := 0
	for i < len(rs) {
		r := rs[i]
		switch {
		case unicode.IsDigit(r):
			start := i
			for i < len(rs) && unicode.IsDigit(rs[i]) {
				i++
			}
			flush(start, i, true)
		case unicode.IsLetter(r) && unicode.IsUpper(r):
			start := i
			for i < len(rs) && unicode.IsLetter(rs[i]) && unicode.IsUpper(rs[i]) {
				i++
			}
			if i < len(rs) && unicode.IsLetter(rs[i]) && !unicode.IsUpper(rs[i]) {
				if i-start >= 2 {
					flush(start, i-1, i-1-start >= 2)
					start = i - 1
				}
				for i < len(rs) && unicode.IsLetter(rs[i]) && !unicode.IsUpper(rs[i]) {
					i++
				}
				flush(start, i, false)
			} else {
				flush(start, i, i-start >= 2)
			}
		case unicode.IsLetter(r):
			start := i
			for i < len(rs) && unicode.IsLetter(rs[i]) && !unicode.IsUpper(rs[i]) {
				i++
			}
			flush(start, i, false)
		default:
			// separator, dropped
			i++
		}
	}
	return words
}

// CombineWords rejoins words under a naming style. Each word is passed through
// legalize and dropped when nothing survives; when no word survives at all the
// word "empty" is substituted so the result is never empty. The first word and
// subsequent words take different styles, as do acronym/number words. If the
// first rune of the combined result fails isStart, a leading underscore is
// injected.
func CombineWords(
	words []Word,
	legalize func(string) string,
	firstStyle, restStyle, firstAcronymStyle, restAcronymStyle WordStyle,
	separator string,
	isStart func(rune) bool,
) string {
	legal := make([]Word, 0, len(words))
	for _, w := range words {
		lw := legalize(w.Value)
		if lw != "" {
			legal = append(legal, Word{Value: lw, IsAcronym: w.IsAcronym})
		}
	}
	if len(legal) == 0 {
		lw := legalize("empty")
		if lw == "" {
			lw = "empty"
		}
		legal = append(legal, Word{Value: lw})
	}
	parts := make([]string, len(legal))
	for i, w := range legal {
		var style WordStyle
		switch {
		case i == 0 && w.IsAcronym:
			style = firstAcronymStyle
		case i == 0:
			style = firstStyle
		case w.IsAcronym:
			style = restAcronymStyle
		default:
			style = restStyle
		}
		parts[i] = style(w.Value)
	}
	out := strings.Join(parts, separator)
	if r, _ := utf8.DecodeRuneInString(out); !isStart(r) {
		out = "_" + out
	}
	return out
}
