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

// reviewRepository implements the domain.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// FindActiveByID retrieves an active review by ID.
func (repo *reviewRepository) FindActiveByID(ctx context.Context, id uint64) (*entity.Review, error) {
	var reviewM model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// ListActiveByPlace returns all active reviews for a place with their author
// preloaded so responses can show the reviewer's nickname.
func (repo *reviewRepository) ListActiveByPlace(ctx context.Context, placeID uint64) ([]*entity.Review, error) {
	var reviewMs []*model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Preload("User").
		Where("place_id = ? AND deleted_at IS NULL", placeID).
		Order("created_at").
		Find(&reviewMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewMs))
	for _, reviewM := range reviewMs {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReview.WrapMessage("review references unknown user or place")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrKeyError.WrapMessage("missing required review information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// UpdateBody rewrites the body of an existing review.
func (repo *reviewRepository) UpdateBody(ctx context.Context, id uint64, body string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]any{
			"body":       body,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// SoftDelete stamps deleted_at on an active review.
func (repo *reviewRepository) SoftDelete(ctx context.Context, id uint64, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", at)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to soft-delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		UserID:    data.UserID,
		PlaceID:   data.PlaceID,
		Body:      data.Body,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		DeletedAt: data.DeletedAt,
		Author:    toUserDomain(data.User),
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:        data.ID,
		UserID:    data.UserID,
		PlaceID:   data.PlaceID,
		Body:      data.Body,
		DeletedAt: data.DeletedAt,
	}
}
