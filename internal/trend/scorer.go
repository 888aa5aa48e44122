package trend

import (
	"time"

	"github.com/google/uuid"

	"bookpulse/internal/domain"
)

// Default tuning, mirrored by the config package. The window follows the
// original one-week trending horizon.
const (
	DefaultWindow         = 7 * 24 * time.Hour
	DefaultPositiveWeight = 1.0
	DefaultNeutralWeight  = 0.0
	DefaultNegativeWeight = -1.0
)

// SentimentWeights maps each label to its score contribution.
type SentimentWeights struct {
	Positive float64
	Neutral  float64
	Negative float64
}

func (w SentimentWeights) weight(label domain.SentimentLabel) float64 {
	switch label {
	case domain.SentimentPositive:
		return w.Positive
	case domain.SentimentNegative:
		return w.Negative
	default:
		return w.Neutral
	}
}

// ScorerConfig tunes the scorer. Zero-value fields fall back to the defaults
// above; a nil Decay selects LinearDecay.
type ScorerConfig struct {
	Window  time.Duration
	Weights *SentimentWeights
	Decay   DecayFunc
}

// Scorer computes a book's trend score from its review history.
type Scorer struct {
	window  time.Duration
	weights SentimentWeights
	decay   DecayFunc
}

func NewScorer(cfg ScorerConfig) *Scorer {
	window := cfg.Window
	if window <= 0 {
		window = DefaultWindow
	}
	weights := SentimentWeights{
		Positive: DefaultPositiveWeight,
		Neutral:  DefaultNeutralWeight,
		Negative: DefaultNegativeWeight,
	}
	if cfg.Weights != nil {
		weights = *cfg.Weights
	}
	decay := cfg.Decay
	if decay == nil {
		decay = LinearDecay
	}
	return &Scorer{window: window, weights: weights, decay: decay}
}

// Window returns the configured lookback window.
func (s *Scorer) Window() time.Duration {
	return s.window
}

// Score sums the weighted, decayed contributions of the book's reviews as of
// the given instant. A review qualifies iff its age is in [0, window): reviews
// at or beyond the window boundary contribute nothing and are not counted,
// and neither are reviews created after asOf (snapshot semantics). Age is
// measured from CreatedAt, so edits do not refresh recency. An empty review
// slice yields score 0 with count 0, not an error.
func (s *Scorer) Score(bookID uuid.UUID, reviews []domain.Review, asOf time.Time) domain.TrendScore {
	score := domain.TrendScore{BookID: bookID, AsOf: asOf}

	for _, review := range reviews {
		age := asOf.Sub(review.CreatedAt)
		if age < 0 || age >= s.window {
			continue
		}
		score.Score += s.weights.weight(review.Sentiment) * s.decay(age, s.window)
		score.ReviewCount++
	}

	return score
}
