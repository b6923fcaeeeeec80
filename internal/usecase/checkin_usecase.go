package usecase

import (
	"context"

	"placelog/internal/domain/entity"
)

// --- Input DTOs ---

// CheckInInput identifies the acting user and the target place.
type CheckInInput struct {
	UserID  uint64
	PlaceID uint64
}

// CancelCheckInInput identifies the acting user and the check-in to cancel.
type CancelCheckInInput struct {
	UserID    uint64
	CheckInID uint64
}

// --- Output DTOs ---

// CheckInOutput wraps a single created check-in.
type CheckInOutput struct {
	CheckIn *entity.CheckIn
}

// CheckInListOutput wraps a user's check-in history at one place.
type CheckInListOutput struct {
	CheckIns []*entity.CheckIn
}

// CheckInUsecase defines the interface for check-in operations. All of them
// act on behalf of an authenticated user.
type CheckInUsecase interface {
	CheckIn(ctx context.Context, input *CheckInInput) (*CheckInOutput, error)
	ListCheckIns(ctx context.Context, input *CheckInInput) (*CheckInListOutput, error)
	CancelCheckIn(ctx context.Context, input *CancelCheckInInput) error
}
