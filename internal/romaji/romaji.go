// Package romaji converts kana text to a Latin reading.
//
// World and author names are frequently Japanese while users type Latin
// queries. The filter layer matches against a romanized reading of both
// fields so "shibuya" finds 渋谷 worlds named in katakana or hiragana.
// The conversion lives behind a single method so other scripts can be
// plugged in without touching the filter logic.
package romaji

import (
	"strings"

	"github.com/gojp/kana"
	"golang.org/x/text/unicode/norm"
)

// Kana romanizes hiragana and katakana via gojp/kana.
//
// Input is NFKC-normalized first, so half-width katakana and full-width
// Latin collapse to their canonical forms before conversion.
type Kana struct{}

// Romanize returns the Latin reading of s. Non-kana runes pass through.
func (Kana) Romanize(s string) string {
	normalized := norm.NFKC.String(s)
	return strings.ToLower(kana.KanaToRomaji(normalized))
}

// Noop returns its input unchanged. Useful in tests and for deployments
// that never see non-Latin names.
type Noop struct{}

// Romanize returns s as-is.
func (Noop) Romanize(s string) string { return s }
