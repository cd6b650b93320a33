package naming_test

import (
	"testing"
	"unicode/utf8"

	"github.com/typewright/typewright/naming"
)

func TestLegalizeName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"width", "width"},
		{"_private", "_private"},
		{"1st", "st"},       // leading digit dropped, not kept
		{"a-b c", "abc"},    // interior separators filtered
		{"123", ""},         // nothing legal survives
		{"", ""},
		{"héllo", "héllo"},  // unicode letters are legal
		{"名前", "名前"},
	}
	for _, tc := range cases {
		if got := naming.LegalizeName(tc.in); got != tc.want {
			t.Errorf("LegalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTypeNameStyle(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"dark-red", "DarkRed"},
		{"dark_red", "DarkRed"},
		{"darkRed", "DarkRed"},
		{"DARK RED", "DARKRED"},
		{"HTTP status", "HTTPStatus"},
		{"point 2d", "Point2D"},
		{"", "Empty"},
		{"!!!", "Empty"},
		{"123", "_123"},
	}
	for _, tc := range cases {
		if got := naming.TypeNameStyle(tc.in); got != tc.want {
			t.Errorf("TypeNameStyle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// TypeNameStyle must always produce a usable bare identifier, whatever the
// source string looks like.
func TestTypeNameStyle_Totality(t *testing.T) {
	inputs := []string{
		"", " ", "\t", "a", "A", "_", "-", "0", "9lives", "héllo wörld",
		"名前", "!!!", "a b c", "snake_case", "kebab-case", "SCREAMING",
		"mixedUP Case", "́combining", "emoji 🎉 name",
	}
	for _, in := range inputs {
		got := naming.TypeNameStyle(in)
		if got == "" {
			t.Errorf("TypeNameStyle(%q) produced an empty identifier", in)
			continue
		}
		first, _ := utf8.DecodeRuneInString(got)
		if !naming.IsIdentifierStart(first) {
			t.Errorf("TypeNameStyle(%q) = %q starts with an illegal rune", in, got)
		}
		for _, r := range got {
			if !naming.IsIdentifierPart(r) {
				t.Errorf("TypeNameStyle(%q) = %q contains illegal rune %q", in, got, r)
			}
		}
	}
}

func TestCamelCaseStyle(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Point", "point"},
		{"DarkRed", "darkRed"},
		{"dark-red", "darkRed"},
		{"", "empty"},
	}
	for _, tc := range cases {
		if got := naming.CamelCaseStyle(tc.in); got != tc.want {
			t.Errorf("CamelCaseStyle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIdentifierPredicates(t *testing.T) {
	if !naming.IsIdentifierStart('_') || !naming.IsIdentifierStart('a') || !naming.IsIdentifierStart('é') {
		t.Error("expected underscore and letters to be identifier starts")
	}
	if naming.IsIdentifierStart('1') || naming.IsIdentifierStart('-') {
		t.Error("digits and punctuation must not start identifiers")
	}
	if !naming.IsIdentifierPart('1') || !naming.IsIdentifierPart('_') {
		t.Error("digits and underscore must be identifier parts")
	}
	if naming.IsIdentifierPart('-') || naming.IsIdentifierPart(' ') {
		t.Error("separators must not be identifier parts")
	}
}
