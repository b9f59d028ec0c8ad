package properties

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canonicalize strips every non-word character (anything but letters, digits
// and underscore) and lower-cases the rest. It is only used to compare Type
// values; the original spelling is what gets displayed.
//
//	"Organization or Person" -> "organizationorperson"
//	"URL "                   -> "url"
//	"Date-Time"              -> "datetime"
func Canonicalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isWord(r) {
			b.WriteRune(r)
		}
	}
	return cases.Lower(language.Und).String(b.String())
}

// SameType reports whether two Type values are equal once canonicalized.
func SameType(a, b string) bool {
	return Canonicalize(a) == Canonicalize(b)
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
