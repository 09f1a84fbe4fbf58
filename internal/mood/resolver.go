package mood

import (
	"context"
	"errors"
	"fmt"
)

// ErrMoodUndetermined is returned when a detection session produced no votes
// to aggregate. It is recoverable: callers re-prompt or pick another
// acquisition strategy, never default to neutral.
var ErrMoodUndetermined = errors.New("mood undetermined")

// VoteCollector runs one bounded detection session and returns the votes it
// gathered. An empty slice with a nil error means frames were captured but no
// face was ever found; a capture-device failure is returned as an error so
// the two cases stay distinguishable.
type VoteCollector interface {
	Collect(ctx context.Context) ([]Vote, error)
}

// Scorer produces a sentiment polarity in [-1, 1] for a piece of text.
type Scorer interface {
	Score(text string) float64
}

// Resolver unifies the three mood acquisition strategies (camera vote,
// text sentiment, manual entry) behind one error taxonomy, so callers need
// not special-case how a mood was obtained.
type Resolver struct {
	collector VoteCollector
	scorer    Scorer
}

// NewResolver creates a Resolver from its two collaborators.
func NewResolver(collector VoteCollector, scorer Scorer) *Resolver {
	return &Resolver{collector: collector, scorer: scorer}
}

// FromCamera runs a detection session and aggregates its votes. Votes whose
// label is outside the canonical set are discarded before aggregation, so a
// misbehaving inference service can never push a non-canonical mood past the
// resolver. Returns ErrMoodUndetermined when no canonical votes remain.
// Capture-device errors from the collector propagate unchanged.
func (r *Resolver) FromCamera(ctx context.Context) (Mood, error) {
	votes, err := r.collector.Collect(ctx)
	if err != nil {
		return "", fmt.Errorf("collecting emotion votes: %w", err)
	}

	canonical := make([]Vote, 0, len(votes))
	for _, v := range votes {
		if Mood(v).Valid() {
			canonical = append(canonical, v)
		}
	}

	m, ok := Aggregate(canonical)
	if !ok {
		return "", ErrMoodUndetermined
	}
	return m, nil
}

// FromText scores the text and maps its polarity to a mood. Total: every
// input resolves to a mood.
func (r *Resolver) FromText(text string) Mood {
	return MapPolarity(r.scorer.Score(text))
}

// FromInput validates a manually entered mood against the canonical set.
func (r *Resolver) FromInput(s string) (Mood, error) {
	return Parse(s)
}
