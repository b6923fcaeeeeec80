package repository

import (
	"context"
	"errors"
	"time"

	"placelog/internal/domain/entity"
)

// ErrReviewNotFound is returned when no active review matches a lookup.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the persistence operations for reviews.
type ReviewRepository interface {
	// FindActiveByID retrieves an active review by ID.
	FindActiveByID(ctx context.Context, id uint64) (*entity.Review, error)

	// ListActiveByPlace returns all active reviews for a place with their
	// author association populated, in creation order.
	ListActiveByPlace(ctx context.Context, placeID uint64) ([]*entity.Review, error)

	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// UpdateBody rewrites the body of an existing review.
	UpdateBody(ctx context.Context, id uint64, body string) error

	// SoftDelete stamps deleted_at on an active review.
	SoftDelete(ctx context.Context, id uint64, at time.Time) error
}
