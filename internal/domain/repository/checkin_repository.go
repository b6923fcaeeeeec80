package repository

import (
	"context"
	"errors"
	"time"

	"placelog/internal/domain/entity"
)

// ErrCheckInNotFound is returned when no active check-in matches a lookup.
// Cancelled check-ins are indistinguishable from missing ones at this layer.
var ErrCheckInNotFound = errors.New("check-in not found")

// CheckInRepository defines the persistence operations for check-ins.
type CheckInRepository interface {
	// FindActiveByID retrieves an active (non-cancelled) check-in by ID.
	FindActiveByID(ctx context.Context, id uint64) (*entity.CheckIn, error)

	// FindLatestActive retrieves the most recently created active check-in
	// for the (user, place) pair, the row the day rule is derived from.
	FindLatestActive(ctx context.Context, userID, placeID uint64) (*entity.CheckIn, error)

	// ListActive returns the active check-ins a user owns for a place, in
	// creation order.
	ListActive(ctx context.Context, userID, placeID uint64) ([]*entity.CheckIn, error)

	// Create persists a new check-in.
	Create(ctx context.Context, checkIn *entity.CheckIn) error

	// SoftDelete cancels an active check-in by stamping deleted_at.
	SoftDelete(ctx context.Context, id uint64, at time.Time) error
}
