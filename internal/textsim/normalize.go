// Package textsim provides Arabic text normalization, edit distance, and
// word-level similarity scoring. It is the single implementation shared by
// fuzzy search and the recitation checker.
package textsim

import "strings"

// Arabic combining diacritics (fathatan through sukun).
const (
	diacriticsLow  = 0x064B
	diacriticsHigh = 0x0652
)

// Normalize canonicalizes Arabic text for comparison. It strips diacritical
// marks, unifies letter variants (all Alef forms to bare Alef, Alef Maksura
// to Ya, Ta Marbuta to Ha), and collapses whitespace runs to single spaces.
// The function is pure and idempotent.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r >= diacriticsLow && r <= diacriticsHigh {
			continue
		}
		switch r {
		case 'أ', 'إ', 'آ': // hamza above, hamza below, madda
			r = 'ا'
		case 'ى': // alef maksura
			r = 'ي'
		case 'ة': // ta marbuta
			r = 'ه'
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Words splits normalized text into its word sequence, dropping empty tokens.
func Words(text string) []string {
	return strings.Fields(text)
}
