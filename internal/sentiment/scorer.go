// Package sentiment scores free text for polarity. The scorer is a
// collaborator of the mood resolver: any implementation producing a polarity
// in [-1, 1] can stand in for it, this one uses a small valence lexicon so
// the player works without an external NLP service.
package sentiment

import (
	"strings"
	"unicode"
)

// negators flip the polarity of the word that follows them.
var negators = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"neither": true,
	"nor":     true,
	"hardly":  true,
	"barely":  true,
	"without": true,
	"don't":   true,
	"doesn't": true,
	"didn't":  true,
	"can't":   true,
	"cannot":  true,
	"won't":   true,
	"isn't":   true,
	"wasn't":  true,
	"aren't":  true,
}

// intensifiers amplify the polarity of the word that follows them.
var intensifiers = map[string]float64{
	"very":       1.5,
	"really":     1.5,
	"extremely":  2.0,
	"so":         1.3,
	"incredibly": 2.0,
	"totally":    1.5,
	"absolutely": 1.8,
	"quite":      1.2,
	"slightly":   0.5,
	"somewhat":   0.6,
}

// Scorer scores text against a word valence lexicon.
type Scorer struct {
	lexicon map[string]float64
}

// New creates a Scorer with the built-in English lexicon.
func New() *Scorer {
	return &Scorer{lexicon: defaultLexicon}
}

// NewWithLexicon creates a Scorer with a custom word valence map. Values
// should lie in [-1, 1].
func NewWithLexicon(lexicon map[string]float64) *Scorer {
	return &Scorer{lexicon: lexicon}
}

// Score returns the polarity of text in [-1, 1]. Zero means neutral or no
// recognized sentiment words. Pure and total: never fails, any string input
// produces a value.
func (s *Scorer) Score(text string) float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0
	}

	var sum float64
	var matched int
	negate := false
	boost := 1.0

	for _, tok := range tokens {
		if negators[tok] {
			negate = true
			continue
		}
		if factor, ok := intensifiers[tok]; ok {
			boost *= factor
			continue
		}

		valence, ok := s.lexicon[tok]
		if !ok {
			// Any other word resets pending modifiers.
			negate = false
			boost = 1.0
			continue
		}

		v := valence * boost
		if negate {
			v = -v * 0.5 // "not good" is mildly negative, not the inverse
		}
		sum += v
		matched++
		negate = false
		boost = 1.0
	}

	if matched == 0 {
		return 0
	}

	return clamp(sum/float64(matched), -1, 1)
}

// tokenize lowercases and splits on anything that is not a letter,
// keeping apostrophes inside words ("don't").
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
