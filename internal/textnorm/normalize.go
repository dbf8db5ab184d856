// Package textnorm canonicalizes portal text for matching. Every comparison
// in the search path happens on normalized text only.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes combining marks, so that
// "résistance" and "resistance" compare equal.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Normalize converts s to its canonical matching form: lowercase, diacritics
// stripped, any rune outside letters/digits/hyphen folded to a space,
// whitespace runs collapsed, trimmed. Idempotent.
func Normalize(s string) string {
	s = strings.ToLower(s)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if keep(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// keep reports whether r survives normalization: ASCII lowercase letters,
// digits, hyphen, and the Cyrillic and Greek scripts used by the portal's
// locales.
func keep(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
		return true
	case unicode.In(r, unicode.Cyrillic, unicode.Greek):
		return true
	}
	return false
}

// Tokenize normalizes s and splits it into non-empty tokens.
func Tokenize(s string) []string {
	return strings.Fields(Normalize(s))
}
