package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// --- Model types ---

type User struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

type Book struct {
	ID     uuid.UUID `db:"id"`
	Title  string    `db:"title"`
	Author string    `db:"author"`
}

type Review struct {
	ID        uuid.UUID      `db:"id"`
	BookID    uuid.UUID      `db:"book_id"`
	UserID    uuid.UUID      `db:"user_id"`
	Text      string         `db:"review_text"`
	Sentiment SentimentLabel `db:"sentiment"`
	Version   int            `db:"version"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// TrendScore is a derived, ephemeral value. It is recomputed per trending
// query and never persisted. Score is the raw signed sum of weighted review
// contributions; the ranker drops anything at or below zero before surfacing.
type TrendScore struct {
	BookID      uuid.UUID
	Score       float64
	ReviewCount int
	AsOf        time.Time
}

// --- Interfaces ---

// Classifier assigns a sentiment label to review text. Implementations must
// be pure: identical text always yields the identical label.
type Classifier interface {
	Classify(text string) (SentimentLabel, error)
}

// ReviewStore abstracts persistence of review records. The store owns the
// write path entirely: it serializes concurrent edits of the same review via
// the Version field and enforces the one-review-per-user-per-book rule.
type ReviewStore interface {
	// CreateReview persists a new review and returns the stored record with
	// its assigned version. A second review by the same user for the same
	// book is rejected with ErrDuplicateReview.
	CreateReview(ctx context.Context, review Review) (Review, error)
	// UpdateReview persists an edited review. The review's Version must match
	// the stored one; on mismatch the store returns ErrEditConflict and keeps
	// the stored record untouched.
	UpdateReview(ctx context.Context, review Review) (Review, error)
	GetReview(ctx context.Context, reviewID uuid.UUID) (Review, error)

	// ReviewsForBook returns the book's reviews created at or after since,
	// ordered by creation time ascending.
	ReviewsForBook(ctx context.Context, bookID uuid.UUID, since time.Time) ([]Review, error)
	// BookIDsWithReviewsSince lists the candidate books for a trending query:
	// every book with at least one review created at or after since.
	BookIDsWithReviewsSince(ctx context.Context, since time.Time) ([]uuid.UUID, error)
}
