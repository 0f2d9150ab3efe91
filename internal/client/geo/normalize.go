// Package geo resolves where itinerary items are: city-name normalisation and
// the fallback chain from explicit coordinates to well-known places, city
// centres and finally a fixed default.
package geo

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeCity folds a place name into its comparison key: accents removed,
// case folded, hyphens and apostrophes treated as spaces, runs of spaces
// collapsed. "Fès", " FES" and "fes" share one key. Transformers and casers
// hold state, so each call builds its own.
func NormalizeCity(s string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	out = cases.Fold().String(out)
	out = strings.Map(func(r rune) rune {
		switch r {
		case '-', '\'', '’', '_':
			return ' '
		}
		return r
	}, out)
	return strings.Join(strings.Fields(out), " ")
}

// SameCity reports whether a and b name the same city. Empty names never
// match.
func SameCity(a, b string) bool {
	na := canonicalCity(NormalizeCity(a))
	return na != "" && na == canonicalCity(NormalizeCity(b))
}

// canonicalCity maps spelling variants onto one key.
func canonicalCity(key string) string {
	if alias, ok := cityAliases[key]; ok {
		return alias
	}
	return key
}
