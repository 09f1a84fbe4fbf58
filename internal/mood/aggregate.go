package mood

// Vote is one raw per-frame emotion label, produced by an emotion source
// before aggregation. Votes have no identity beyond the detection session
// that collected them.
type Vote string

// Aggregate reduces an ordered sequence of per-frame votes to the most
// frequent mood. Ties break toward the label encountered first among the
// maximum, so the result is stable with respect to vote order. Returns
// ok=false for an empty sequence, which callers must treat as "mood
// undetermined" rather than a valid mood.
func Aggregate(votes []Vote) (Mood, bool) {
	if len(votes) == 0 {
		return "", false
	}

	counts := make(map[Vote]int, len(votes))
	var winner Vote
	best := 0

	for _, v := range votes {
		counts[v]++
		// Strict > keeps the first-encountered label on ties.
		if counts[v] > best {
			best = counts[v]
			winner = v
		}
	}

	return Mood(winner), true
}
