package postgres

import (
	"context"

	"placelog/internal/domain/entity"
	"placelog/internal/domain/repository"
	"placelog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// regionRepository implements the domain.RegionRepository interface using GORM.
// The underlying tables are seeded reference data, so this repository is
// read-only by design of the domain interface.
type regionRepository struct {
	db *gorm.DB
}

// NewRegionRepository is the constructor for regionRepository.
func NewRegionRepository(db *gorm.DB) repository.RegionRepository {
	return &regionRepository{db: db}
}

// FindMetroRegionByName retrieves a metro region by its unique name.
func (repo *regionRepository) FindMetroRegionByName(ctx context.Context, name string) (*entity.MetroRegion, error) {
	var metroM model.MetroRegionModel
	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&metroM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegionNotFound
		}

		return nil, errors.Wrap(err, "failed to find metro region by name")
	}

	return toMetroRegionDomain(&metroM), nil
}

// FindLocalRegionByName retrieves a local region by name within the given
// metro region. Local region names repeat across metro regions.
func (repo *regionRepository) FindLocalRegionByName(ctx context.Context, name string, metroRegionID uint64) (*entity.LocalRegion, error) {
	var localM model.LocalRegionModel
	if err := repo.db.WithContext(ctx).
		Preload("MetroRegion").
		Where("name = ? AND metro_region_id = ?", name, metroRegionID).
		First(&localM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegionNotFound
		}

		return nil, errors.Wrap(err, "failed to find local region by name")
	}

	return toLocalRegionDomain(&localM), nil
}

// FindPlaceTypeByName retrieves a place type by its unique name.
func (repo *regionRepository) FindPlaceTypeByName(ctx context.Context, name string) (*entity.PlaceType, error) {
	var typeM model.PlaceTypeModel
	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&typeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaceTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find place type by name")
	}

	return toPlaceTypeDomain(&typeM), nil
}

// --- Mapper Functions ---

func toMetroRegionDomain(data *model.MetroRegionModel) *entity.MetroRegion {
	if data == nil {
		return nil
	}

	return &entity.MetroRegion{
		ID:   data.ID,
		Name: data.Name,
	}
}

func toLocalRegionDomain(data *model.LocalRegionModel) *entity.LocalRegion {
	if data == nil {
		return nil
	}

	return &entity.LocalRegion{
		ID:          data.ID,
		Name:        data.Name,
		MetroRegion: toMetroRegionDomain(data.MetroRegion),
	}
}

func toPlaceTypeDomain(data *model.PlaceTypeModel) *entity.PlaceType {
	if data == nil {
		return nil
	}

	return &entity.PlaceType{
		ID:   data.ID,
		Name: data.Name,
	}
}
