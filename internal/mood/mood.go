// Package mood defines the canonical mood set and the inference logic that
// turns raw observations (emotion votes, sentiment polarity, typed input)
// into a single canonical mood.
package mood

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Mood is one canonical label from the fixed emotion set.
type Mood string

// The closed mood set. Every resolution path produces one of these values;
// free-form strings never escape Parse.
const (
	Happy    Mood = "happy"
	Sad      Mood = "sad"
	Angry    Mood = "angry"
	Surprise Mood = "surprise"
	Neutral  Mood = "neutral"
	Fear     Mood = "fear"
	Disgust  Mood = "disgust"
)

// All lists every canonical mood in display order.
var All = []Mood{Happy, Sad, Angry, Surprise, Neutral, Fear, Disgust}

// ErrUnknownMood is returned when an entered mood is not in the canonical set.
var ErrUnknownMood = errors.New("unknown mood")

// suggestionThreshold is the minimum similarity before a near-miss is offered.
const suggestionThreshold = 0.75

// UnknownMoodError provides context for a rejected manual mood entry,
// including the closest canonical mood when one is similar enough.
type UnknownMoodError struct {
	Input      string
	Suggestion Mood // empty when nothing is close
}

func (e UnknownMoodError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown mood %q (did you mean %q?)", e.Input, e.Suggestion)
	}
	return fmt.Sprintf("unknown mood %q", e.Input)
}

func (e UnknownMoodError) Is(target error) bool {
	return target == ErrUnknownMood
}

// String returns the lowercase canonical name.
func (m Mood) String() string {
	return string(m)
}

// Valid reports whether m is a member of the canonical set.
func (m Mood) Valid() bool {
	for _, known := range All {
		if m == known {
			return true
		}
	}
	return false
}

// Parse validates a free-form string against the canonical set, trimming
// whitespace and ignoring case. On failure it returns an UnknownMoodError
// carrying the nearest canonical mood as a suggestion, when one is close.
func Parse(s string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	if m.Valid() {
		return m, nil
	}
	return "", UnknownMoodError{Input: s, Suggestion: closest(string(m))}
}

// closest returns the canonical mood most similar to the input, or "" when
// nothing clears the suggestion threshold.
func closest(input string) Mood {
	if input == "" {
		return ""
	}

	jw := metrics.NewJaroWinkler()
	var best Mood
	var bestScore float64

	for _, known := range All {
		score := strutil.Similarity(input, string(known), jw)
		if score > bestScore {
			bestScore = score
			best = known
		}
	}

	if bestScore < suggestionThreshold {
		return ""
	}
	return best
}
