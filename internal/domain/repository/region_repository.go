package repository

import (
	"context"
	"errors"

	"placelog/internal/domain/entity"
)

// Sentinel errors for reference-data lookups. Metro and local region misses
// share one sentinel because the API reports both as INVALID_REGION.
var (
	ErrPlaceTypeNotFound = errors.New("place type not found")
	ErrRegionNotFound    = errors.New("region not found")
)

// RegionRepository provides name-based lookups over the immutable reference
// tables joined by places.
type RegionRepository interface {
	// FindMetroRegionByName retrieves a metro region by its unique name.
	FindMetroRegionByName(ctx context.Context, name string) (*entity.MetroRegion, error)

	// FindLocalRegionByName retrieves a local region by name within the given
	// metro region. Names are only unique per metro region.
	FindLocalRegionByName(ctx context.Context, name string, metroRegionID uint64) (*entity.LocalRegion, error)

	// FindPlaceTypeByName retrieves a place type by its unique name.
	FindPlaceTypeByName(ctx context.Context, name string) (*entity.PlaceType, error)
}
