// Package slug derives URL-safe path segments from free text.
//
// A slug is lower-case ASCII letters and digits separated by single hyphens.
// Diacritics are removed through canonical decomposition, so "José Pérez"
// becomes "jose-perez".
package slug

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Make converts text into a slug. Empty input, or input without a single
// ASCII letter or digit after decomposition, yields the empty string.
func Make(text string) string {
	if text == "" {
		return ""
	}

	// Chains hold state, so each call builds its own.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(stripMarks, text)
	if err != nil {
		folded = text
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	gap := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if gap && b.Len() > 0 {
				b.WriteByte('-')
			}
			gap = false
			b.WriteRune(r)
			continue
		}
		gap = true
	}
	return b.String()
}

// WithSuffix returns the n-th collision variant of base: "ana-perez" with
// n=1 gives "ana-perez1".
func WithSuffix(base string, n int) string {
	return base + strconv.Itoa(n)
}

// Valid reports whether s is already in slug form.
func Valid(s string) bool {
	return s != "" && Make(s) == s
}
