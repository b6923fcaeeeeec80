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

// checkInService implements the CheckInUsecase interface.
type checkInService struct {
	txManager   repository.TransactionManager
	checkInRepo repository.CheckInRepository
	logger      *slog.Logger
}

// CheckInServiceParams holds dependencies for checkInService, injected by Fx.
type CheckInServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CheckInRepo repository.CheckInRepository
	Logger      *slog.Logger
}

// NewCheckInService is the constructor for checkInService.
func NewCheckInService(params CheckInServiceParams) usecase.CheckInUsecase {
	return &checkInService{
		txManager:   params.TxManager,
		checkInRepo: params.CheckInRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkInService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckIn records a user's presence at a place, at most once per day per
// place. The day rule derives from the latest active check-in only, so
// cancelling today's check-in immediately reopens the place.
func (srv *checkInService) CheckIn(ctx context.Context, input *usecase.CheckInInput) (*usecase.CheckInOutput, error) {
	srv.log(ctx).Info("Checking in", slog.Uint64("userID", input.UserID), slog.Uint64("placeID", input.PlaceID))

	newCheckIn := &entity.CheckIn{
		UserID:  input.UserID,
		PlaceID: input.PlaceID,
	}

	// The day-rule read and the insert share a transaction so two concurrent
	// check-ins by the same user serialize on the store.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		checkInRepo := repoFactory.CheckInRepo()

		latest, err := checkInRepo.FindLatestActive(ctx, input.UserID, input.PlaceID)
		if err != nil && !errors.Is(err, repository.ErrCheckInNotFound) {
			return errors.Wrap(err, "failed to find latest check-in")
		}
		if latest != nil && latest.SameDayAs(time.Now()) {
			return errors.Wrap(domainerrors.ErrAlreadyCheckedInToday, "check-in rejected")
		}

		return checkInRepo.Create(ctx, newCheckIn)
	})
	if err != nil {
		srv.log(ctx).Warn("Check-in failed", slog.Uint64("userID", input.UserID), slog.Uint64("placeID", input.PlaceID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Checked in", slog.Uint64("checkInID", newCheckIn.ID))

	return &usecase.CheckInOutput{CheckIn: newCheckIn}, nil
}

// ListCheckIns returns the user's active check-ins at a place.
func (srv *checkInService) ListCheckIns(ctx context.Context, input *usecase.CheckInInput) (*usecase.CheckInListOutput, error) {
	checkIns, err := srv.checkInRepo.ListActive(ctx, input.UserID, input.PlaceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list check-ins")
	}

	return &usecase.CheckInListOutput{CheckIns: checkIns}, nil
}

// CancelCheckIn soft-deletes a check-in. Only the owner may cancel, and a
// cancelled or missing check-in reports the same error.
func (srv *checkInService) CancelCheckIn(ctx context.Context, input *usecase.CancelCheckInInput) error {
	srv.log(ctx).Info("Cancelling check-in", slog.Uint64("userID", input.UserID), slog.Uint64("checkInID", input.CheckInID))

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		checkInRepo := repoFactory.CheckInRepo()

		checkIn, err := checkInRepo.FindActiveByID(ctx, input.CheckInID)
		if err != nil {
			if errors.Is(err, repository.ErrCheckInNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCheckIn, "check-in cancellation rejected")
			}

			return errors.Wrap(err, "failed to find check-in")
		}

		if checkIn.UserID != input.UserID {
			return errors.Wrap(domainerrors.ErrUnauthorized, "check-in belongs to another user")
		}

		if err := checkInRepo.SoftDelete(ctx, input.CheckInID, time.Now()); err != nil {
			return errors.Wrap(err, "failed to cancel check-in")
		}

		return nil
	})
}
