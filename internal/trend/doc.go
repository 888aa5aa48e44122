// Package trend computes time-weighted trend scores from review history and
// ranks books by them.
//
// Scorer sums sentiment-weighted, recency-decayed contributions of a book's
// reviews inside a fixed lookback window. Ranker orders the resulting scores
// and keeps only positive momentum. Both are pure and safe for concurrent use.
package trend
