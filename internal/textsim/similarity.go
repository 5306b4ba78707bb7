package textsim

import "unicode/utf8"

// DefaultThreshold is the similarity below which two words are treated as
// non-matching rather than a close misspelling.
const DefaultThreshold = 0.6

// Similarity returns a score in [0,1] for how alike two strings are after
// normalization: 1 - distance/maxLen over rune counts. Two empty strings are
// perfectly similar; an empty string against a non-empty one scores 0.
func Similarity(a, b string) float64 {
	na := Normalize(a)
	nb := Normalize(b)
	maxLen := utf8.RuneCountInString(na)
	if l := utf8.RuneCountInString(nb); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(Distance(na, nb))/float64(maxLen)
}

// FuzzySearch returns the candidates whose similarity to query meets or
// exceeds threshold, preserving candidate order. The boundary is inclusive.
func FuzzySearch(query string, candidates []string, threshold float64) []string {
	matches := make([]string, 0)
	for _, c := range candidates {
		if Similarity(query, c) >= threshold {
			matches = append(matches, c)
		}
	}
	return matches
}
