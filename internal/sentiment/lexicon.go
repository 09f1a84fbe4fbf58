package sentiment

// defaultLexicon maps words to valence in [-1, 1]. Skewed toward the
// vocabulary people use when describing how they feel, since the input here
// is a short journal-style mood description.
var defaultLexicon = map[string]float64{
	// positive
	"amazing":    0.9,
	"awesome":    0.9,
	"beautiful":  0.7,
	"best":       0.8,
	"better":     0.4,
	"bright":     0.4,
	"calm":       0.3,
	"cheerful":   0.8,
	"content":    0.4,
	"delighted":  0.9,
	"ecstatic":   1.0,
	"energetic":  0.6,
	"enjoy":      0.6,
	"enjoyed":    0.6,
	"excellent":  0.9,
	"excited":    0.7,
	"fantastic":  0.9,
	"fine":       0.3,
	"fun":        0.6,
	"glad":       0.6,
	"good":       0.5,
	"grateful":   0.7,
	"great":      0.7,
	"happy":      0.8,
	"hopeful":    0.5,
	"joy":        0.8,
	"joyful":     0.9,
	"love":       0.8,
	"loved":      0.8,
	"lovely":     0.7,
	"nice":       0.5,
	"optimistic": 0.5,
	"peaceful":   0.4,
	"perfect":    0.9,
	"pleased":    0.6,
	"proud":      0.6,
	"relaxed":    0.4,
	"relieved":   0.4,
	"smile":      0.5,
	"smiling":    0.5,
	"thrilled":   0.9,
	"wonderful":  0.9,

	// negative
	"afraid":       -0.6,
	"alone":        -0.4,
	"angry":        -0.7,
	"annoyed":      -0.5,
	"anxious":      -0.6,
	"awful":        -0.8,
	"bad":          -0.5,
	"bored":        -0.3,
	"broken":       -0.6,
	"cry":          -0.7,
	"crying":       -0.7,
	"depressed":    -0.9,
	"devastated":   -1.0,
	"disappointed": -0.6,
	"down":         -0.4,
	"dreadful":     -0.8,
	"empty":        -0.5,
	"exhausted":    -0.5,
	"fail":         -0.6,
	"failed":       -0.6,
	"fear":         -0.6,
	"frustrated":   -0.6,
	"gloomy":       -0.6,
	"hate":         -0.8,
	"hated":        -0.8,
	"heartbroken":  -1.0,
	"hopeless":     -0.8,
	"horrible":     -0.9,
	"hurt":         -0.6,
	"lonely":       -0.6,
	"lost":         -0.5,
	"mad":          -0.6,
	"miserable":    -0.9,
	"nervous":      -0.5,
	"pain":         -0.6,
	"sad":          -0.7,
	"scared":       -0.6,
	"sick":         -0.5,
	"stressed":     -0.6,
	"terrible":     -0.9,
	"tired":        -0.3,
	"unhappy":      -0.7,
	"upset":        -0.6,
	"worried":      -0.5,
	"worse":        -0.6,
	"worst":        -0.9,
}
