package sentiment

import (
	"fmt"
	"strings"
	"unicode"

	"bookpulse/internal/domain"
)

// Default decision boundaries on the polarity score in [-1, 1]. Both are
// inclusive: a score exactly at a threshold takes that threshold's label.
const (
	DefaultPositiveThreshold = 0.25
	DefaultNegativeThreshold = -0.25
)

// negationWindow is how many following tokens a negator can flip.
const negationWindow = 3

// Config tunes the classifier. Thresholds must satisfy
// NegativeThreshold < PositiveThreshold. A nil Lexicon selects DefaultLexicon.
type Config struct {
	PositiveThreshold float64
	NegativeThreshold float64
	Lexicon           Lexicon
}

// DefaultConfig returns the tuning used when no deployment-specific
// thresholds are injected.
func DefaultConfig() Config {
	return Config{
		PositiveThreshold: DefaultPositiveThreshold,
		NegativeThreshold: DefaultNegativeThreshold,
	}
}

// LexiconClassifier scores text polarity against a fixed valence lexicon.
// It implements domain.Classifier.
type LexiconClassifier struct {
	positiveThreshold float64
	negativeThreshold float64
	lexicon           Lexicon
}

func NewLexiconClassifier(cfg Config) (*LexiconClassifier, error) {
	if cfg.NegativeThreshold >= cfg.PositiveThreshold {
		return nil, fmt.Errorf("negative threshold %v must be below positive threshold %v",
			cfg.NegativeThreshold, cfg.PositiveThreshold)
	}
	lexicon := cfg.Lexicon
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &LexiconClassifier{
		positiveThreshold: cfg.PositiveThreshold,
		negativeThreshold: cfg.NegativeThreshold,
		lexicon:           lexicon,
	}, nil
}

// Classify maps review text to a sentiment label. Empty or whitespace-only
// text is rejected with domain.ErrEmptyText; every other input classifies.
func (c *LexiconClassifier) Classify(text string) (domain.SentimentLabel, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrEmptyText
	}

	score := c.score(text)
	switch {
	case score >= c.positiveThreshold:
		return domain.SentimentPositive, nil
	case score <= c.negativeThreshold:
		return domain.SentimentNegative, nil
	default:
		return domain.SentimentNeutral, nil
	}
}

// score computes the polarity ratio: the signed valence sum divided by the
// absolute valence sum over matched tokens. The result is always in [-1, 1];
// text with no lexicon hits scores 0. A negator token flips the sign of the
// next valence-bearing token within negationWindow tokens.
func (c *LexiconClassifier) score(text string) float64 {
	tokens := tokenize(text)

	var sum, magnitude float64
	negated := 0
	for _, token := range tokens {
		if negators[token] {
			negated = negationWindow
			continue
		}

		valence, ok := c.lexicon[token]
		if !ok {
			if negated > 0 {
				negated--
			}
			continue
		}

		if negated > 0 {
			valence = -valence
			negated = 0
		}
		sum += valence
		magnitude += abs(valence)
	}

	if magnitude == 0 {
		return 0
	}
	return sum / magnitude
}

// tokenize lowercases the text and splits it into letter runs. Apostrophes
// stay inside tokens so contractions like "don't" survive as one token.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
