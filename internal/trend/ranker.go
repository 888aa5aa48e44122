package trend

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"bookpulse/internal/domain"
)

// Rank orders trend scores and returns the top limit book IDs. Books with a
// score at or below zero never appear: trending means positive momentum.
// Ordering is fully deterministic: score descending, then qualifying review
// count descending, then book ID ascending by string form. A non-positive
// limit is rejected with domain.ErrInvalidLimit.
func Rank(scores []domain.TrendScore, limit int) ([]uuid.UUID, error) {
	if limit <= 0 {
		return nil, domain.ErrInvalidLimit
	}

	trending := make([]domain.TrendScore, 0, len(scores))
	for _, score := range scores {
		if score.Score > 0 {
			trending = append(trending, score)
		}
	}

	sort.Slice(trending, func(i, j int) bool {
		return Less(trending[j], trending[i])
	})

	if len(trending) > limit {
		trending = trending[:limit]
	}

	ids := make([]uuid.UUID, len(trending))
	for i, score := range trending {
		ids[i] = score.BookID
	}
	return ids, nil
}

// Less reports whether a ranks strictly below b: lower score, then fewer
// qualifying reviews, then greater book ID.
func Less(a, b domain.TrendScore) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	if a.ReviewCount != b.ReviewCount {
		return a.ReviewCount < b.ReviewCount
	}
	return strings.Compare(a.BookID.String(), b.BookID.String()) > 0
}
