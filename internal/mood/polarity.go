package mood

// Polarity thresholds for the sentiment mapping. Values at exactly the
// threshold map to neutral.
const (
	positiveThreshold = 0.3
	negativeThreshold = -0.3
)

// MapPolarity maps a sentiment polarity in [-1, 1] to a coarse mood. A
// one-dimensional polarity cannot distinguish anger, fear, disgust or
// surprise, so only happy, sad and neutral are reachable from text input.
func MapPolarity(p float64) Mood {
	switch {
	case p > positiveThreshold:
		return Happy
	case p < negativeThreshold:
		return Sad
	default:
		return Neutral
	}
}
