package usecase

import (
	"context"

	"placelog/internal/domain/entity"
)

// --- Input DTOs ---

// WriteReviewInput defines the data required to post a review on a place.
type WriteReviewInput struct {
	UserID  uint64
	PlaceID uint64
	Body    string
}

// UpdateReviewInput carries a replacement body for an existing review.
type UpdateReviewInput struct {
	UserID   uint64
	ReviewID uint64
	Body     string
}

// DeleteReviewInput identifies the acting user and the review to delete.
type DeleteReviewInput struct {
	UserID   uint64
	ReviewID uint64
}

// --- Output DTOs ---

// ReviewOutput wraps a single review.
type ReviewOutput struct {
	Review *entity.Review
}

// ReviewListOutput wraps a place's active reviews, authors populated.
type ReviewListOutput struct {
	Reviews []*entity.Review
}

// ReviewUsecase defines the interface for review ledger operations. Listing
// is open; writing, updating and deleting require an authenticated owner.
type ReviewUsecase interface {
	WriteReview(ctx context.Context, input *WriteReviewInput) (*ReviewOutput, error)
	ListReviews(ctx context.Context, placeID uint64) (*ReviewListOutput, error)
	UpdateReview(ctx context.Context, input *UpdateReviewInput) (*ReviewOutput, error)
	DeleteReview(ctx context.Context, input *DeleteReviewInput) error
}
