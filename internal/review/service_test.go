package review

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookpulse/internal/domain"
	"bookpulse/internal/sentiment"
	"bookpulse/internal/trend"
)

var serviceStart = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

// --- Mocks ---

var errStoreDown = errors.New("store unavailable")

// failingStore returns the same error from every operation.
type failingStore struct {
	err error
}

func (f *failingStore) CreateReview(context.Context, domain.Review) (domain.Review, error) {
	return domain.Review{}, f.err
}

func (f *failingStore) UpdateReview(context.Context, domain.Review) (domain.Review, error) {
	return domain.Review{}, f.err
}

func (f *failingStore) GetReview(context.Context, uuid.UUID) (domain.Review, error) {
	return domain.Review{}, f.err
}

func (f *failingStore) ReviewsForBook(context.Context, uuid.UUID, time.Time) ([]domain.Review, error) {
	return nil, f.err
}

func (f *failingStore) BookIDsWithReviewsSince(context.Context, time.Time) ([]uuid.UUID, error) {
	return nil, f.err
}

// --- Helpers ---

func newTestService(t *testing.T, store domain.ReviewStore, clock clockwork.Clock) *Service {
	t.Helper()
	classifier, err := sentiment.NewLexiconClassifier(sentiment.DefaultConfig())
	require.NoError(t, err)
	scorer := trend.NewScorer(trend.ScorerConfig{Window: 7 * 24 * time.Hour})
	return NewService(store, classifier, scorer, clock)
}

// --- Write path ---

func TestCreateReview_ClassifiesAndPersists(t *testing.T) {
	store := NewInMemoryStore()
	clock := clockwork.NewFakeClockAt(serviceStart)
	svc := newTestService(t, store, clock)
	bookID, userID := uuid.New(), uuid.New()

	created, err := svc.CreateReview(context.Background(), bookID, userID, "An amazing, unforgettable story")
	require.NoError(t, err)

	assert.Equal(t, domain.SentimentPositive, created.Sentiment)
	assert.Equal(t, serviceStart, created.CreatedAt)
	assert.Equal(t, serviceStart, created.UpdatedAt)
	assert.Equal(t, 1, created.Version)

	fetched, err := store.GetReview(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestCreateReview_EmptyText(t *testing.T) {
	svc := newTestService(t, NewInMemoryStore(), clockwork.NewFakeClockAt(serviceStart))

	_, err := svc.CreateReview(context.Background(), uuid.New(), uuid.New(), "  ")
	assert.ErrorIs(t, err, domain.ErrEmptyText)
}

func TestCreateReview_TextTooLong(t *testing.T) {
	svc := newTestService(t, NewInMemoryStore(), clockwork.NewFakeClockAt(serviceStart))

	_, err := svc.CreateReview(context.Background(), uuid.New(), uuid.New(), strings.Repeat("a", DefaultMaxTextLength+1))
	assert.ErrorIs(t, err, domain.ErrTextTooLong)
}

func TestCreateReview_DuplicatePropagates(t *testing.T) {
	store := NewInMemoryStore()
	svc := newTestService(t, store, clockwork.NewFakeClockAt(serviceStart))
	bookID, userID := uuid.New(), uuid.New()

	_, err := svc.CreateReview(context.Background(), bookID, userID, "loved it")
	require.NoError(t, err)

	_, err = svc.CreateReview(context.Background(), bookID, userID, "loved it even more")
	assert.ErrorIs(t, err, domain.ErrDuplicateReview)
}

func TestCreateReview_PropagatesStoreError(t *testing.T) {
	svc := newTestService(t, &failingStore{err: errStoreDown}, clockwork.NewFakeClockAt(serviceStart))

	_, err := svc.CreateReview(context.Background(), uuid.New(), uuid.New(), "a good book")
	assert.ErrorIs(t, err, errStoreDown)
}

func TestUpdateReview_ReclassifiesEditedText(t *testing.T) {
	store := NewInMemoryStore()
	clock := clockwork.NewFakeClockAt(serviceStart)
	svc := newTestService(t, store, clock)

	created, err := svc.CreateReview(context.Background(), uuid.New(), uuid.New(), "a brilliant read")
	require.NoError(t, err)
	require.Equal(t, domain.SentimentPositive, created.Sentiment)

	clock.Advance(2 * time.Hour)
	updated, err := svc.UpdateReview(context.Background(), created.ID, "on reflection, dull and disappointing", created.Version)
	require.NoError(t, err)

	assert.Equal(t, domain.SentimentNegative, updated.Sentiment)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, serviceStart.Add(2*time.Hour), updated.UpdatedAt)
	assert.Equal(t, 2, updated.Version)
}

func TestUpdateReview_StaleVersionConflicts(t *testing.T) {
	store := NewInMemoryStore()
	svc := newTestService(t, store, clockwork.NewFakeClockAt(serviceStart))

	created, err := svc.CreateReview(context.Background(), uuid.New(), uuid.New(), "a brilliant read")
	require.NoError(t, err)

	_, err = svc.UpdateReview(context.Background(), created.ID, "first edit wins", created.Version)
	require.NoError(t, err)

	_, err = svc.UpdateReview(context.Background(), created.ID, "second edit loses", created.Version)
	assert.ErrorIs(t, err, domain.ErrEditConflict)
}

func TestUpdateReview_MissingReview(t *testing.T) {
	svc := newTestService(t, NewInMemoryStore(), clockwork.NewFakeClockAt(serviceStart))

	_, err := svc.UpdateReview(context.Background(), uuid.New(), "a good book", 1)
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)
}

func TestUpdateReview_EmptyTextRejectedBeforeStoreAccess(t *testing.T) {
	// Classification runs first, so even a broken store never sees the call.
	svc := newTestService(t, &failingStore{err: errStoreDown}, clockwork.NewFakeClockAt(serviceStart))

	_, err := svc.UpdateReview(context.Background(), uuid.New(), "", 1)
	assert.ErrorIs(t, err, domain.ErrEmptyText)
}

// --- Trending ---

func TestTrending_RanksRecentPositiveMomentum(t *testing.T) {
	store := NewInMemoryStore()
	clock := clockwork.NewFakeClockAt(serviceStart)
	svc := newTestService(t, store, clock)
	ctx := context.Background()

	steady := uuid.New() // one positive review, six days old at query time
	rising := uuid.New() // one positive review, one day old at query time
	panned := uuid.New() // negative momentum, must not trend

	_, err := svc.CreateReview(ctx, steady, uuid.New(), "a wonderful classic")
	require.NoError(t, err)

	clock.Advance(5 * 24 * time.Hour)
	_, err = svc.CreateReview(ctx, rising, uuid.New(), "gripping and brilliant")
	require.NoError(t, err)
	_, err = svc.CreateReview(ctx, panned, uuid.New(), "tedious and overrated")
	require.NoError(t, err)

	clock.Advance(24 * time.Hour)
	trending, err := svc.Trending(ctx, 10)
	require.NoError(t, err)

	require.Len(t, trending, 2)
	assert.Equal(t, rising, trending[0].BookID)
	assert.Equal(t, steady, trending[1].BookID)
	assert.Greater(t, trending[0].Score, trending[1].Score)
	assert.Equal(t, 1, trending[0].ReviewCount)
	assert.Equal(t, clock.Now(), trending[0].AsOf)
}

func TestTrending_ExpiredReviewsDropOut(t *testing.T) {
	store := NewInMemoryStore()
	clock := clockwork.NewFakeClockAt(serviceStart)
	svc := newTestService(t, store, clock)
	ctx := context.Background()

	_, err := svc.CreateReview(ctx, uuid.New(), uuid.New(), "an amazing book")
	require.NoError(t, err)

	clock.Advance(8 * 24 * time.Hour)
	trending, err := svc.Trending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, trending)
}

func TestTrending_EmptyStore(t *testing.T) {
	svc := newTestService(t, NewInMemoryStore(), clockwork.NewFakeClockAt(serviceStart))

	trending, err := svc.Trending(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, trending)
}

func TestTrending_InvalidLimit(t *testing.T) {
	svc := newTestService(t, NewInMemoryStore(), clockwork.NewFakeClockAt(serviceStart))

	_, err := svc.Trending(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidLimit)

	_, err = svc.Trending(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidLimit)
}

func TestTrending_PropagatesStoreError(t *testing.T) {
	svc := newTestService(t, &failingStore{err: errStoreDown}, clockwork.NewFakeClockAt(serviceStart))

	_, err := svc.Trending(context.Background(), 10)
	assert.ErrorIs(t, err, errStoreDown)
}
