package usecase

import (
	"context"

	"placelog/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterPlaceInput defines the data required to register a place. Region,
// place type and metro/local names arrive as free text and are resolved
// against the reference tables.
type RegisterPlaceInput struct {
	Name        string
	PlaceType   string
	MetroRegion string
	LocalRegion string
	RoadAddress string
}

// UpdatePlaceInput carries a full replacement of a place's mutable fields.
type UpdatePlaceInput struct {
	PlaceID     uint64
	Name        string
	PlaceType   string
	MetroRegion string
	LocalRegion string
	RoadAddress string
}

// --- Output DTOs ---

// PlaceOutput wraps a single place with its resolved associations.
type PlaceOutput struct {
	Place *entity.Place
}

// PlaceListOutput wraps the active place listing.
type PlaceListOutput struct {
	Places []*entity.Place
}

// PlaceUsecase defines the interface for place registry operations.
type PlaceUsecase interface {
	RegisterPlace(ctx context.Context, input *RegisterPlaceInput) (*PlaceOutput, error)
	GetPlace(ctx context.Context, placeID uint64) (*PlaceOutput, error)
	ListPlaces(ctx context.Context) (*PlaceListOutput, error)
	UpdatePlace(ctx context.Context, input *UpdatePlaceInput) (*PlaceOutput, error)
	DeletePlace(ctx context.Context, placeID uint64) error
}
