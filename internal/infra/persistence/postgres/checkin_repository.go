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

// checkInRepository implements the domain.CheckInRepository interface using GORM.
type checkInRepository struct {
	db *gorm.DB
}

// NewCheckInRepository is the constructor for checkInRepository.
func NewCheckInRepository(db *gorm.DB) repository.CheckInRepository {
	return &checkInRepository{db: db}
}

// FindActiveByID retrieves an active check-in by ID. Cancelled rows are
// filtered out here, so callers never see them.
func (repo *checkInRepository) FindActiveByID(ctx context.Context, id uint64) (*entity.CheckIn, error) {
	var checkInM model.CheckInModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&checkInM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckInNotFound
		}

		return nil, errors.Wrap(err, "failed to find check-in by id")
	}

	return toCheckInDomain(&checkInM), nil
}

// FindLatestActive retrieves the most recently created active check-in for
// the (user, place) pair.
func (repo *checkInRepository) FindLatestActive(ctx context.Context, userID, placeID uint64) (*entity.CheckIn, error) {
	var checkInM model.CheckInModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND place_id = ? AND deleted_at IS NULL", userID, placeID).
		Order("created_at DESC").
		First(&checkInM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckInNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest check-in")
	}

	return toCheckInDomain(&checkInM), nil
}

// ListActive returns the active check-ins a user owns for a place in
// creation order.
func (repo *checkInRepository) ListActive(ctx context.Context, userID, placeID uint64) ([]*entity.CheckIn, error) {
	var checkInMs []*model.CheckInModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND place_id = ? AND deleted_at IS NULL", userID, placeID).
		Order("created_at").
		Find(&checkInMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list check-ins")
	}

	checkIns := make([]*entity.CheckIn, 0, len(checkInMs))
	for _, checkInM := range checkInMs {
		checkIns = append(checkIns, toCheckInDomain(checkInM))
	}

	return checkIns, nil
}

// Create persists a new check-in.
func (repo *checkInRepository) Create(ctx context.Context, checkIn *entity.CheckIn) error {
	checkInM := fromCheckInDomain(checkIn)

	if err := repo.db.WithContext(ctx).Create(checkInM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidPlace.WrapMessage("check-in references unknown user or place")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create check-in")
	}

	checkIn.ID = checkInM.ID
	checkIn.CreatedAt = checkInM.CreatedAt

	return nil
}

// SoftDelete cancels an active check-in by stamping deleted_at.
func (repo *checkInRepository) SoftDelete(ctx context.Context, id uint64, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CheckInModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", at)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to cancel check-in")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCheckInNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCheckInDomain(data *model.CheckInModel) *entity.CheckIn {
	if data == nil {
		return nil
	}

	return &entity.CheckIn{
		ID:        data.ID,
		UserID:    data.UserID,
		PlaceID:   data.PlaceID,
		CreatedAt: data.CreatedAt,
		DeletedAt: data.DeletedAt,
	}
}

func fromCheckInDomain(data *entity.CheckIn) *model.CheckInModel {
	if data == nil {
		return nil
	}

	return &model.CheckInModel{
		ID:        data.ID,
		UserID:    data.UserID,
		PlaceID:   data.PlaceID,
		DeletedAt: data.DeletedAt,
	}
}
