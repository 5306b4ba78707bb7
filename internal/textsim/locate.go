package textsim

import (
	"unicode/utf8"

	"github.com/noorlabs/murshid/internal/models"
)

// spellingLengthSlack is the maximum rune-length difference for a mismatched
// word pair to still be classified as a spelling error rather than two
// unrelated words.
const spellingLengthSlack = 2

// LocateErrors aligns the user's words against the correct text and
// classifies mismatches as missing, extra, or spelling errors. Both inputs
// are normalized first; positions are word indices in the correct text.
//
// The walk is lockstep with a single-word lookahead: when a pair is too
// dissimilar to be a misspelling, the locator checks whether the user word
// matches the next correct word (a dropped word) or the next user word
// matches the current correct word (an inserted word) before consuming the
// pair. Without the lookahead a single dropped word would cascade into
// spurious mismatches for the rest of the text.
func LocateErrors(userText, correctText string) []models.TasmeaError {
	userWords := Words(Normalize(userText))
	correctWords := Words(Normalize(correctText))

	errors := make([]models.TasmeaError, 0)
	ui := 0

	for ci := 0; ci < len(correctWords); ci++ {
		cw := correctWords[ci]
		if ui >= len(userWords) {
			errors = append(errors, models.TasmeaError{
				Position:    ci,
				CorrectWord: cw,
				Type:        models.ErrorMissing,
			})
			continue
		}

		uw := userWords[ui]
		if uw == cw {
			ui++
			continue
		}

		sim := Similarity(uw, cw)
		if sim >= DefaultThreshold {
			if lengthDiff(uw, cw) <= spellingLengthSlack {
				errors = append(errors, models.TasmeaError{
					Position:    ci,
					UserWord:    uw,
					CorrectWord: cw,
					Type:        models.ErrorSpelling,
				})
			}
			ui++
			continue
		}

		// Dropped word: the user word belongs to the next correct word.
		if ci+1 < len(correctWords) && Similarity(uw, correctWords[ci+1]) >= DefaultThreshold {
			errors = append(errors, models.TasmeaError{
				Position:    ci,
				CorrectWord: cw,
				Type:        models.ErrorMissing,
			})
			continue
		}

		// Inserted word: the next user word belongs to this correct word.
		if ui+1 < len(userWords) && Similarity(userWords[ui+1], cw) >= DefaultThreshold {
			errors = append(errors, models.TasmeaError{
				Position: ci,
				UserWord: uw,
				Type:     models.ErrorExtra,
			})
			ui++
			ci--
			continue
		}

		if lengthDiff(uw, cw) <= spellingLengthSlack {
			errors = append(errors, models.TasmeaError{
				Position:    ci,
				UserWord:    uw,
				CorrectWord: cw,
				Type:        models.ErrorSpelling,
			})
		}
		ui++
	}

	for ; ui < len(userWords); ui++ {
		errors = append(errors, models.TasmeaError{
			Position: len(correctWords),
			UserWord: userWords[ui],
			Type:     models.ErrorExtra,
		})
	}

	return errors
}

func lengthDiff(a, b string) int {
	d := utf8.RuneCountInString(a) - utf8.RuneCountInString(b)
	if d < 0 {
		d = -d
	}
	return d
}
