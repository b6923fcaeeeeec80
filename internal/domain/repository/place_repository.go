package repository

import (
	"context"
	"errors"
	"time"

	"placelog/internal/domain/entity"
)

// ErrPlaceNotFound is returned when no place row exists for the given ID,
// regardless of deletion state.
var ErrPlaceNotFound = errors.New("place not found")

// PlaceRepository defines the persistence operations for places.
type PlaceRepository interface {
	// FindByID retrieves a place by ID with its type and region associations,
	// including soft-deleted rows. Callers decide how to report deleted rows
	// via the entity's deletion policy.
	FindByID(ctx context.Context, id uint64) (*entity.Place, error)

	// ListActive returns all non-deleted places with type and region
	// associations, in creation order.
	ListActive(ctx context.Context) ([]*entity.Place, error)

	// ExistsActiveDuplicate reports whether an active place already holds the
	// given (name, type, road address, region) tuple.
	ExistsActiveDuplicate(ctx context.Context, name string, placeTypeID uint64, roadAddress string, regionID uint64) (bool, error)

	// Create persists a new place.
	Create(ctx context.Context, place *entity.Place) error

	// Update rewrites the mutable columns of an existing place.
	Update(ctx context.Context, place *entity.Place) error

	// SoftDelete stamps deleted_at on an active place. The guard against
	// double-stamping lives in the WHERE clause, so a row already deleted is
	// never updated twice.
	SoftDelete(ctx context.Context, id uint64, at time.Time) error
}
