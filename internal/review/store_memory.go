package review

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"bookpulse/internal/domain"
)

type userBookKey struct {
	UserID uuid.UUID
	BookID uuid.UUID
}

// InMemoryStore is the reference domain.ReviewStore for tests and
// single-process use. A single mutex serializes all writes, which satisfies
// the per-review write ordering the store contract requires.
type InMemoryStore struct {
	mu         sync.RWMutex
	reviews    map[uuid.UUID]domain.Review
	byBook     map[uuid.UUID][]uuid.UUID
	byUserBook map[userBookKey]uuid.UUID
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		reviews:    make(map[uuid.UUID]domain.Review),
		byBook:     make(map[uuid.UUID][]uuid.UUID),
		byUserBook: make(map[userBookKey]uuid.UUID),
	}
}

func (s *InMemoryStore) CreateReview(_ context.Context, review domain.Review) (domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := userBookKey{UserID: review.UserID, BookID: review.BookID}
	if _, exists := s.byUserBook[key]; exists {
		return domain.Review{}, domain.ErrDuplicateReview
	}

	review.Version = 1
	s.reviews[review.ID] = review
	s.byBook[review.BookID] = append(s.byBook[review.BookID], review.ID)
	s.byUserBook[key] = review.ID
	return review, nil
}

func (s *InMemoryStore) UpdateReview(_ context.Context, review domain.Review) (domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.reviews[review.ID]
	if !exists {
		return domain.Review{}, domain.ErrReviewNotFound
	}
	if review.Version != current.Version {
		return domain.Review{}, domain.ErrEditConflict
	}

	current.Text = review.Text
	current.Sentiment = review.Sentiment
	current.UpdatedAt = review.UpdatedAt
	current.Version++
	s.reviews[review.ID] = current
	return current, nil
}

func (s *InMemoryStore) GetReview(_ context.Context, reviewID uuid.UUID) (domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	review, exists := s.reviews[reviewID]
	if !exists {
		return domain.Review{}, domain.ErrReviewNotFound
	}
	return review, nil
}

func (s *InMemoryStore) ReviewsForBook(_ context.Context, bookID uuid.UUID, since time.Time) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var reviews []domain.Review
	for _, id := range s.byBook[bookID] {
		review := s.reviews[id]
		if review.CreatedAt.Before(since) {
			continue
		}
		reviews = append(reviews, review)
	}

	sort.Slice(reviews, func(i, j int) bool {
		if !reviews[i].CreatedAt.Equal(reviews[j].CreatedAt) {
			return reviews[i].CreatedAt.Before(reviews[j].CreatedAt)
		}
		return strings.Compare(reviews[i].ID.String(), reviews[j].ID.String()) < 0
	})
	return reviews, nil
}

func (s *InMemoryStore) BookIDsWithReviewsSince(_ context.Context, since time.Time) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bookIDs []uuid.UUID
	for bookID, reviewIDs := range s.byBook {
		for _, id := range reviewIDs {
			if !s.reviews[id].CreatedAt.Before(since) {
				bookIDs = append(bookIDs, bookID)
				break
			}
		}
	}

	sort.Slice(bookIDs, func(i, j int) bool {
		return strings.Compare(bookIDs[i].String(), bookIDs[j].String()) < 0
	})
	return bookIDs, nil
}
