package sentiment

// Lexicon maps a lowercase token to its valence. Positive values lean
// Positive, negative values lean Negative. Magnitude expresses intensity and
// feeds the polarity-ratio denominator.
type Lexicon map[string]float64

// negators flip the valence of the token that follows them.
var negators = map[string]bool{
	"not":      true,
	"no":       true,
	"never":    true,
	"neither":  true,
	"nor":      true,
	"hardly":   true,
	"barely":   true,
	"isn't":    true,
	"wasn't":   true,
	"aren't":   true,
	"weren't":  true,
	"don't":    true,
	"doesn't":  true,
	"didn't":   true,
	"can't":    true,
	"cannot":   true,
	"couldn't": true,
	"won't":    true,
	"wouldn't": true,
}

// DefaultLexicon returns the built-in valence lexicon, tuned for book review
// vocabulary. Callers get a fresh map so deployments can layer their own
// entries on top without affecting others.
func DefaultLexicon() Lexicon {
	lexicon := make(Lexicon, len(defaultLexicon))
	for token, valence := range defaultLexicon {
		lexicon[token] = valence
	}
	return lexicon
}

var defaultLexicon = Lexicon{
	// strong positive
	"masterpiece":   2,
	"brilliant":     2,
	"amazing":       2,
	"wonderful":     2,
	"excellent":     2,
	"outstanding":   2,
	"breathtaking":  2,
	"unforgettable": 2,
	"stunning":      2,
	"superb":        2,
	"loved":         2,
	"love":          2,
	"adore":         2,
	"adored":        2,
	"perfect":       2,

	// positive
	"good":        1,
	"great":       1,
	"enjoyable":   1,
	"enjoyed":     1,
	"engaging":    1,
	"gripping":    1,
	"compelling":  1,
	"captivating": 1,
	"delightful":  1,
	"charming":    1,
	"moving":      1,
	"touching":    1,
	"insightful":  1,
	"thoughtful":  1,
	"satisfying":  1,
	"rewarding":   1,
	"recommend":   1,
	"recommended": 1,
	"favorite":    1,
	"favourite":   1,
	"fun":         1,
	"witty":       1,
	"clever":      1,
	"beautiful":   1,
	"rich":        1,
	"vivid":       1,
	"fresh":       1,
	"memorable":   1,
	"immersive":   1,
	"liked":       1,
	"like":        1,
	"nice":        1,
	"solid":       1,
	"interesting": 1,

	// negative
	"bad":           -1,
	"boring":        -1,
	"dull":          -1,
	"slow":          -1,
	"tedious":       -1,
	"flat":          -1,
	"weak":          -1,
	"bland":         -1,
	"predictable":   -1,
	"forgettable":   -1,
	"confusing":     -1,
	"disjointed":    -1,
	"shallow":       -1,
	"cliched":       -1,
	"overrated":     -1,
	"mediocre":      -1,
	"disappointing": -1,
	"disappointed":  -1,
	"disliked":      -1,
	"dislike":       -1,
	"annoying":      -1,
	"frustrating":   -1,
	"pretentious":   -1,
	"repetitive":    -1,
	"contrived":     -1,
	"uninspired":    -1,
	"lacking":       -1,

	// strong negative
	"terrible":     -2,
	"awful":        -2,
	"horrible":     -2,
	"dreadful":     -2,
	"atrocious":    -2,
	"unreadable":   -2,
	"hated":        -2,
	"hate":         -2,
	"waste":        -2,
	"worst":        -2,
	"insufferable": -2,
}
