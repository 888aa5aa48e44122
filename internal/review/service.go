package review

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"bookpulse/internal/domain"
	"bookpulse/internal/metrics"
	"bookpulse/internal/trend"
)

// DefaultMaxTextLength caps review bodies, matching the original submission
// limit.
const DefaultMaxTextLength = 1000

// Service wires the classifier, scorer, and store into the review flows.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	store      domain.ReviewStore
	classifier domain.Classifier
	scorer     *trend.Scorer
	clock      clockwork.Clock
	maxTextLen int
}

func NewService(store domain.ReviewStore, classifier domain.Classifier, scorer *trend.Scorer, clock clockwork.Clock) *Service {
	return &Service{
		store:      store,
		classifier: classifier,
		scorer:     scorer,
		clock:      clock,
		maxTextLen: DefaultMaxTextLength,
	}
}

// CreateReview classifies the text and persists a new review for the given
// user and book. Store errors (duplicate review, unavailable backend)
// propagate unchanged.
func (s *Service) CreateReview(ctx context.Context, bookID, userID uuid.UUID, text string) (domain.Review, error) {
	label, err := s.classify(text)
	if err != nil {
		return domain.Review{}, err
	}

	now := s.clock.Now()
	review := domain.Review{
		ID:        uuid.New(),
		BookID:    bookID,
		UserID:    userID,
		Text:      text,
		Sentiment: label,
		CreatedAt: now,
		UpdatedAt: now,
	}

	stored, err := s.store.CreateReview(ctx, review)
	if err != nil {
		return domain.Review{}, err
	}

	metrics.ReviewsCreated.Inc()
	slog.Info("review created",
		"review_id", stored.ID, "book_id", bookID, "sentiment", label)
	return stored, nil
}

// UpdateReview re-classifies the edited text and persists it against the
// caller's known version. The store rejects stale versions with
// ErrEditConflict; the caller decides whether to re-read and retry.
func (s *Service) UpdateReview(ctx context.Context, reviewID uuid.UUID, text string, version int) (domain.Review, error) {
	label, err := s.classify(text)
	if err != nil {
		return domain.Review{}, err
	}

	current, err := s.store.GetReview(ctx, reviewID)
	if err != nil {
		return domain.Review{}, err
	}

	current.Text = text
	current.Sentiment = label
	current.Version = version
	current.UpdatedAt = s.clock.Now()

	stored, err := s.store.UpdateReview(ctx, current)
	if err != nil {
		if errors.Is(err, domain.ErrEditConflict) {
			metrics.EditConflicts.Inc()
		}
		return domain.Review{}, err
	}

	metrics.ReviewsUpdated.Inc()
	slog.Info("review updated",
		"review_id", stored.ID, "version", stored.Version, "sentiment", label)
	return stored, nil
}

// Trending scores every book with recent review activity and returns the top
// limit results in rank order. Fewer than limit books may qualify; none
// qualifying yields an empty slice, not an error.
func (s *Service) Trending(ctx context.Context, limit int) ([]domain.TrendScore, error) {
	if limit <= 0 {
		return nil, domain.ErrInvalidLimit
	}

	asOf := s.clock.Now()
	timer := metrics.TrendingQueryTimer()
	defer timer.ObserveDuration()

	since := asOf.Add(-s.scorer.Window())
	bookIDs, err := s.store.BookIDsWithReviewsSince(ctx, since)
	if err != nil {
		return nil, err
	}

	byBook := make(map[uuid.UUID]domain.TrendScore, len(bookIDs))
	scores := make([]domain.TrendScore, 0, len(bookIDs))
	for _, bookID := range bookIDs {
		reviews, err := s.store.ReviewsForBook(ctx, bookID, since)
		if err != nil {
			return nil, err
		}
		score := s.scorer.Score(bookID, reviews, asOf)
		byBook[bookID] = score
		scores = append(scores, score)
	}

	ranked, err := trend.Rank(scores, limit)
	if err != nil {
		return nil, err
	}

	result := make([]domain.TrendScore, len(ranked))
	for i, bookID := range ranked {
		result[i] = byBook[bookID]
	}

	metrics.TrendingQueries.Inc()
	slog.Debug("trending computed",
		"candidates", len(scores), "returned", len(result), "as_of", asOf)
	return result, nil
}

func (s *Service) classify(text string) (domain.SentimentLabel, error) {
	if len(text) > s.maxTextLen {
		return "", domain.ErrTextTooLong
	}
	label, err := s.classifier.Classify(text)
	if err != nil {
		metrics.ClassificationErrors.Inc()
		return "", err
	}
	metrics.Classifications.WithLabelValues(label.String()).Inc()
	return label, nil
}
