package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"bookpulse/internal/config"
	"bookpulse/internal/domain"
	"bookpulse/internal/logging"
	"bookpulse/internal/review"
	"bookpulse/internal/sentiment"
	"bookpulse/internal/trend"
)

type seedReview struct {
	book int // index into books
	user int // index into users
	age  time.Duration
	text string
}

func main() {
	// Optional .env for local tuning; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)

	classifier, err := sentiment.NewLexiconClassifier(sentiment.Config{
		PositiveThreshold: cfg.PositiveThreshold,
		NegativeThreshold: cfg.NegativeThreshold,
	})
	if err != nil {
		slog.Error("Failed to build classifier", "error", err)
		os.Exit(1)
	}

	decay := trend.DecayFunc(trend.LinearDecay)
	if cfg.DecayShape == config.DecayExponential {
		decay = trend.ExponentialDecay(cfg.DecayRate)
	}
	scorer := trend.NewScorer(trend.ScorerConfig{
		Window: cfg.TrendWindow,
		Weights: &trend.SentimentWeights{
			Positive: cfg.PositiveWeight,
			Neutral:  cfg.NeutralWeight,
			Negative: cfg.NegativeWeight,
		},
		Decay: decay,
	})

	store := review.NewInMemoryStore()
	svc := review.NewService(store, classifier, scorer, clockwork.NewRealClock())

	books := []domain.Book{
		{ID: uuid.New(), Title: "The Great Gatsby", Author: "F. Scott Fitzgerald"},
		{ID: uuid.New(), Title: "1984", Author: "George Orwell"},
		{ID: uuid.New(), Title: "To Kill a Mockingbird", Author: "Harper Lee"},
	}
	users := []domain.User{
		{ID: uuid.New(), Username: "alice", Email: "alice@example.com"},
		{ID: uuid.New(), Username: "bob", Email: "bob@example.com"},
		{ID: uuid.New(), Username: "carol", Email: "carol@example.com"},
	}

	seeds := []seedReview{
		{book: 0, user: 0, age: 12 * time.Hour, text: "An amazing book! A must-read, I loved every page."},
		{book: 0, user: 1, age: 2 * 24 * time.Hour, text: "Beautiful prose and a gripping story."},
		{book: 1, user: 0, age: 24 * time.Hour, text: "Brilliant and unforgettable, but bleak."},
		{book: 1, user: 2, age: 5 * 24 * time.Hour, text: "Interesting ideas, though the pacing felt slow."},
		{book: 2, user: 1, age: 3 * 24 * time.Hour, text: "I found it quite dull and overrated."},
		{book: 2, user: 2, age: 20 * 24 * time.Hour, text: "A wonderful classic."},
	}

	ctx := context.Background()
	now := time.Now()
	for _, seed := range seeds {
		label, err := classifier.Classify(seed.text)
		if err != nil {
			logging.WithError(err).Error("Failed to classify seed review")
			os.Exit(1)
		}
		createdAt := now.Add(-seed.age)
		_, err = store.CreateReview(ctx, domain.Review{
			ID:        uuid.New(),
			BookID:    books[seed.book].ID,
			UserID:    users[seed.user].ID,
			Text:      seed.text,
			Sentiment: label,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		})
		if err != nil {
			logging.WithBook(books[seed.book].ID.String()).Error("Failed to seed review", "error", err)
			os.Exit(1)
		}
	}

	trending, err := svc.Trending(ctx, cfg.TrendingLimit)
	if err != nil {
		logging.WithError(err).Error("Trending query failed")
		os.Exit(1)
	}

	titles := make(map[uuid.UUID]domain.Book, len(books))
	for _, b := range books {
		titles[b.ID] = b
	}

	slog.Info("Trending books", "window", cfg.TrendWindow, "count", len(trending))
	for rank, score := range trending {
		book := titles[score.BookID]
		slog.Info("Trending entry",
			"rank", rank+1,
			"title", book.Title,
			"author", book.Author,
			"score", score.Score,
			"reviews", score.ReviewCount)
	}
}
