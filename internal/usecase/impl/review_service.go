package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "placelog/internal/delivery/context"
	"placelog/internal/domain/entity"
	domainerrors "placelog/internal/domain/errors"
	"placelog/internal/domain/repository"
	"placelog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	placeRepo  repository.PlaceRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	PlaceRepo  repository.PlaceRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		placeRepo:  params.PlaceRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// WriteReview posts a review on an active place. A user may review the same
// place any number of times.
func (srv *reviewService) WriteReview(ctx context.Context, input *usecase.WriteReviewInput) (*usecase.ReviewOutput, error) {
	srv.log(ctx).Info("Writing review", slog.Uint64("userID", input.UserID), slog.Uint64("placeID", input.PlaceID))

	newReview := &entity.Review{
		UserID:  input.UserID,
		PlaceID: input.PlaceID,
		Body:    input.Body,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.requireActivePlace(ctx, repoFactory.PlaceRepo(), input.PlaceID); err != nil {
			return err
		}

		return repoFactory.ReviewRepo().Create(ctx, newReview)
	})
	if err != nil {
		srv.log(ctx).Warn("Review creation failed", slog.Uint64("placeID", input.PlaceID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Review created", slog.Uint64("reviewID", newReview.ID))

	return &usecase.ReviewOutput{Review: newReview}, nil
}

// ListReviews returns a place's active reviews with authors populated.
func (srv *reviewService) ListReviews(ctx context.Context, placeID uint64) (*usecase.ReviewListOutput, error) {
	if err := srv.requireActivePlace(ctx, srv.placeRepo, placeID); err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.ListActiveByPlace(ctx, placeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return &usecase.ReviewListOutput{Reviews: reviews}, nil
}

// UpdateReview replaces the body of a review. Only the owner may update.
func (srv *reviewService) UpdateReview(ctx context.Context, input *usecase.UpdateReviewInput) (*usecase.ReviewOutput, error) {
	srv.log(ctx).Info("Updating review", slog.Uint64("userID", input.UserID), slog.Uint64("reviewID", input.ReviewID))

	var updated *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, err := srv.loadOwnedReview(ctx, reviewRepo, input.ReviewID, input.UserID)
		if err != nil {
			return err
		}

		if err := reviewRepo.UpdateBody(ctx, input.ReviewID, input.Body); err != nil {
			return errors.Wrap(err, "failed to update review")
		}

		review.Body = input.Body
		updated = review

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Review update failed", slog.Uint64("reviewID", input.ReviewID), slog.Any("error", err))

		return nil, err
	}

	return &usecase.ReviewOutput{Review: updated}, nil
}

// DeleteReview soft-deletes a review. Only the owner may delete; a deleted
// or missing review reports the same error.
func (srv *reviewService) DeleteReview(ctx context.Context, input *usecase.DeleteReviewInput) error {
	srv.log(ctx).Info("Deleting review", slog.Uint64("userID", input.UserID), slog.Uint64("reviewID", input.ReviewID))

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		if _, err := srv.loadOwnedReview(ctx, reviewRepo, input.ReviewID, input.UserID); err != nil {
			return err
		}

		if err := reviewRepo.SoftDelete(ctx, input.ReviewID, time.Now()); err != nil {
			return errors.Wrap(err, "failed to soft-delete review")
		}

		return nil
	})
}

// loadOwnedReview fetches an active review and verifies ownership. Deleted
// and missing reviews collapse into the same error.
func (srv *reviewService) loadOwnedReview(ctx context.Context, reviewRepo repository.ReviewRepository, reviewID, userID uint64) (*entity.Review, error) {
	review, err := reviewRepo.FindActiveByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidReview, "review lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	if !review.OwnedBy(userID) {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "review belongs to another user")
	}

	return review, nil
}

// requireActivePlace verifies the target place exists and is not deleted.
// Review routes collapse both failures into one 400, unlike the place
// endpoints which distinguish them.
func (srv *reviewService) requireActivePlace(ctx context.Context, placeRepo repository.PlaceRepository, placeID uint64) error {
	place, err := placeRepo.FindByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaceNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidPlaceForReview, "place lookup failed")
		}

		return errors.Wrap(err, "failed to find place")
	}

	if err := entity.ResolveDeleted(place.DeletedAt, entity.MergeDeleted, domainerrors.ErrInvalidPlaceForReview, domainerrors.ErrInvalidPlaceForReview); err != nil {
		return errors.Wrap(err, "place lookup failed")
	}

	return nil
}
