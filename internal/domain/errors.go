package domain

import "errors"

var (
	// ErrEmptyText rejects classification of empty or whitespace-only text.
	ErrEmptyText = errors.New("review text is empty")
	// ErrTextTooLong rejects review bodies over the configured length cap.
	ErrTextTooLong = errors.New("review text too long")
	// ErrInvalidLimit rejects non-positive trending limits.
	ErrInvalidLimit = errors.New("limit must be positive")

	ErrReviewNotFound  = errors.New("review not found")
	ErrBookNotFound    = errors.New("book not found")
	ErrDuplicateReview = errors.New("user has already reviewed this book")
	// ErrEditConflict signals a stale-version write to an edited review.
	ErrEditConflict = errors.New("review was modified concurrently")
)
