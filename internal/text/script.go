// Package text provides the shaping primitives the layout pipeline is built
// on: script detection, Unicode normalization, width measurement and line
// wrapping. Everything in this package is pure and safe for concurrent use.
package text

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Thai Unicode block boundaries (U+0E00..U+0E7F).
const (
	thaiBlockLo = 0x0E00
	thaiBlockHi = 0x0E7F
)

// ContainsThai reports whether any codepoint of s falls in the Thai Unicode
// block. Text containing such codepoints needs a non-Latin fallback font and
// must never be case-transformed.
func ContainsThai(s string) bool {
	for _, r := range s {
		if r >= thaiBlockLo && r <= thaiBlockHi {
			return true
		}
	}
	return false
}

// zeroWidth strips the invisible marks that editors and clipboards leave
// behind: ZWSP, ZWNJ, ZWJ (U+200B..U+200D) and the BOM (U+FEFF).
var zeroWidth = runes.Remove(runes.Predicate(func(r rune) bool {
	return (r >= 0x200B && r <= 0x200D) || r == 0xFEFF
}))

// Normalize applies canonical composition (NFC) and removes zero-width
// marks. It is idempotent and returns the input unchanged if the transform
// chain fails.
func Normalize(s string) string {
	out, _, err := transform.String(transform.Chain(norm.NFC, zeroWidth), s)
	if err != nil {
		return s
	}
	return out
}

// Uppercase upper-cases s unless it contains Thai codepoints. Thai
// letterforms have no case and mixed Thai/Latin content is left untouched to
// avoid corrupting the Thai runs.
func Uppercase(s string) string {
	if ContainsThai(s) {
		return s
	}
	return strings.ToUpper(s)
}
