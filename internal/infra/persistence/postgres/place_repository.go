package postgres

import (
	"context"
	"time"

	"placelog/internal/domain/entity"
	domainerrors "placelog/internal/domain/errors"
	"placelog/internal/domain/repository"
	"placelog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// placeRepository implements the domain.PlaceRepository interface using GORM.
type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository is the constructor for placeRepository.
func NewPlaceRepository(db *gorm.DB) repository.PlaceRepository {
	return &placeRepository{db: db}
}

// FindByID retrieves a place by ID with its type and region associations.
// Soft-deleted rows are returned too; the caller resolves how to report them.
func (repo *placeRepository) FindByID(ctx context.Context, id uint64) (*entity.Place, error) {
	var placeM model.PlaceModel
	if err := repo.db.WithContext(ctx).
		Preload("PlaceType").
		Preload("Region.MetroRegion").
		Where("id = ?", id).
		First(&placeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaceNotFound
		}

		return nil, errors.Wrap(err, "failed to find place by id")
	}

	return toPlaceDomain(&placeM), nil
}

// ListActive returns all non-deleted places with their associations in
// creation order.
func (repo *placeRepository) ListActive(ctx context.Context) ([]*entity.Place, error) {
	var placeMs []*model.PlaceModel
	if err := repo.db.WithContext(ctx).
		Preload("PlaceType").
		Preload("Region.MetroRegion").
		Where("deleted_at IS NULL").
		Order("id").
		Find(&placeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list places")
	}

	places := make([]*entity.Place, 0, len(placeMs))
	for _, placeM := range placeMs {
		places = append(places, toPlaceDomain(placeM))
	}

	return places, nil
}

// ExistsActiveDuplicate reports whether an active place already holds the
// given (name, type, road address, region) tuple.
func (repo *placeRepository) ExistsActiveDuplicate(ctx context.Context, name string, placeTypeID uint64, roadAddress string, regionID uint64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PlaceModel{}).
		Where("name = ? AND place_type_id = ? AND road_address = ? AND region_id = ? AND deleted_at IS NULL",
			name, placeTypeID, roadAddress, regionID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count duplicate places")
	}

	return count > 0, nil
}

// Create persists a new place.
func (repo *placeRepository) Create(ctx context.Context, place *entity.Place) error {
	placeM := fromPlaceDomain(place)

	if err := repo.db.WithContext(ctx).Create(placeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidRegion.WrapMessage("place references unknown reference data")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrKeyError.WrapMessage("missing required place information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create place")
	}

	place.ID = placeM.ID
	place.CreatedAt = placeM.CreatedAt
	place.UpdatedAt = placeM.UpdatedAt

	return nil
}

// Update rewrites the mutable columns of an existing place.
func (repo *placeRepository) Update(ctx context.Context, place *entity.Place) error {
	placeM := fromPlaceDomain(place)

	result := repo.db.WithContext(ctx).
		Model(&model.PlaceModel{}).
		Where("id = ?", place.ID).
		Updates(map[string]any{
			"name":          placeM.Name,
			"place_type_id": placeM.PlaceTypeID,
			"region_id":     placeM.RegionID,
			"road_address":  placeM.RoadAddress,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidRegion.WrapMessage("place references unknown reference data")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update place")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaceNotFound
	}

	return nil
}

// SoftDelete stamps deleted_at on an active place. The deleted_at guard in
// the WHERE clause keeps a second delete from re-stamping the row.
func (repo *placeRepository) SoftDelete(ctx context.Context, id uint64, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlaceModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", at)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to soft-delete place")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPlaceDomain converts a GORM PlaceModel to a domain Place entity.
func toPlaceDomain(data *model.PlaceModel) *entity.Place {
	if data == nil {
		return nil
	}

	return &entity.Place{
		ID:          data.ID,
		Name:        data.Name,
		PlaceType:   toPlaceTypeDomain(data.PlaceType),
		Region:      toLocalRegionDomain(data.Region),
		RoadAddress: data.RoadAddress,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		DeletedAt:   data.DeletedAt,
	}
}

// fromPlaceDomain converts a domain Place entity to a GORM PlaceModel.
// Associations travel as plain foreign keys so GORM never upserts the
// reference tables.
func fromPlaceDomain(data *entity.Place) *model.PlaceModel {
	if data == nil {
		return nil
	}

	placeM := &model.PlaceModel{
		ID:          data.ID,
		Name:        data.Name,
		RoadAddress: data.RoadAddress,
		DeletedAt:   data.DeletedAt,
	}
	if data.PlaceType != nil {
		placeM.PlaceTypeID = data.PlaceType.ID
	}
	if data.Region != nil {
		placeM.RegionID = data.Region.ID
	}

	return placeM
}
