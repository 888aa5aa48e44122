package domain

import "fmt"

// SentimentLabel is the categorical polarity judgment of a review text.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)

// ParseSentimentLabel converts a stored string into a SentimentLabel.
func ParseSentimentLabel(s string) (SentimentLabel, error) {
	switch SentimentLabel(s) {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return SentimentLabel(s), nil
	}
	return "", fmt.Errorf("unknown sentiment label %q", s)
}

func (l SentimentLabel) String() string {
	return string(l)
}
