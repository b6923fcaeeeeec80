package impl

import (
	"context"
	"testing"
	"time"

	"placelog/internal/domain/entity"
	domainerrors "placelog/internal/domain/errors"
	"placelog/internal/domain/repository"
	"placelog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkInServiceFixtures struct {
	service     usecase.CheckInUsecase
	checkInRepo *mockCheckInRepository
}

func createTestCheckInService(t *testing.T) checkInServiceFixtures {
	t.Helper()

	checkInRepo := &mockCheckInRepository{}
	txManager := &passthroughTxManager{factory: &stubRepoFactory{checkInRepo: checkInRepo}}

	service := NewCheckInService(CheckInServiceParams{
		TxManager:   txManager,
		CheckInRepo: checkInRepo,
		Logger:      newDiscardLogger(),
	})

	return checkInServiceFixtures{
		service:     service,
		checkInRepo: checkInRepo,
	}
}

func TestCheckInService_CheckIn_FirstVisit(t *testing.T) {
	fix := createTestCheckInService(t)
	ctx := context.Background()

	fix.checkInRepo.On("FindLatestActive", ctx, uint64(1), uint64(2)).
		Return(nil, repository.ErrCheckInNotFound)
	fix.checkInRepo.On("Create", ctx, mock.AnythingOfType("*entity.CheckIn")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.CheckIn).ID = 9
		}).
		Return(nil)

	output, err := fix.service.CheckIn(ctx, &usecase.CheckInInput{UserID: 1, PlaceID: 2})
	require.NoError(t, err)
	assert.Equal(t, uint64(9), output.CheckIn.ID)
}

func TestCheckInService_CheckIn_BlockedWithin24Hours(t *testing.T) {
	fix := createTestCheckInService(t)
	ctx := context.Background()

	fix.checkInRepo.On("FindLatestActive", ctx, uint64(1), uint64(2)).
		Return(&entity.CheckIn{ID: 8, UserID: 1, PlaceID: 2, CreatedAt: time.Now().Add(-23 * time.Hour)}, nil)

	_, err := fix.service.CheckIn(ctx, &usecase.CheckInInput{UserID: 1, PlaceID: 2})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyCheckedInToday)
	fix.checkInRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckInService_CheckIn_AllowedAfter24Hours(t *testing.T) {
	fix := createTestCheckInService(t)
	ctx := context.Background()

	fix.checkInRepo.On("FindLatestActive", ctx, uint64(1), uint64(2)).
		Return(&entity.CheckIn{ID: 8, UserID: 1, PlaceID: 2, CreatedAt: time.Now().Add(-25 * time.Hour)}, nil)
	fix.checkInRepo.On("Create", ctx, mock.AnythingOfType("*entity.CheckIn")).Return(nil)

	_, err := fix.service.CheckIn(ctx, &usecase.CheckInInput{UserID: 1, PlaceID: 2})
	require.NoError(t, err)
	fix.checkInRepo.AssertExpectations(t)
}

func TestCheckInService_CheckIn_CancelledCheckInDoesNotBlock(t *testing.T) {
	fix := createTestCheckInService(t)
	ctx := context.Background()

	// The repository only surfaces active rows; a cancelled check-in earlier
	// today therefore reads as "no check-in".
	fix.checkInRepo.On("FindLatestActive", ctx, uint64(1), uint64(2)).
		Return(nil, repository.ErrCheckInNotFound)
	fix.checkInRepo.On("Create", ctx, mock.AnythingOfType("*entity.CheckIn")).Return(nil)

	_, err := fix.service.CheckIn(ctx, &usecase.CheckInInput{UserID: 1, PlaceID: 2})
	require.NoError(t, err)
}

func TestCheckInService_ListCheckIns(t *testing.T) {
	fix := createTestCheckInService(t)
	ctx := context.Background()

	history := []*entity.CheckIn{
		{ID: 1, UserID: 1, PlaceID: 2},
		{ID: 4, UserID: 1, PlaceID: 2},
	}
	fix.checkInRepo.On("ListActive", ctx, uint64(1), uint64(2)).Return(history, nil)

	output, err := fix.service.ListCheckIns(ctx, &usecase.CheckInInput{UserID: 1, PlaceID: 2})
	require.NoError(t, err)
	assert.Len(t, output.CheckIns, 2)
}

func TestCheckInService_CancelCheckIn_Success(t *testing.T) {
	fix := createTestCheckInService(t)
	ctx := context.Background()

	fix.checkInRepo.On("FindActiveByID", ctx, uint64(9)).
		Return(&entity.CheckIn{ID: 9, UserID: 1, PlaceID: 2}, nil)
	fix.checkInRepo.On("SoftDelete", ctx, uint64(9), mock.AnythingOfType("time.Time")).Return(nil)

	err := fix.service.CancelCheckIn(ctx, &usecase.CancelCheckInInput{UserID: 1, CheckInID: 9})
	require.NoError(t, err)
	fix.checkInRepo.AssertExpectations(t)
}

func TestCheckInService_CancelCheckIn_NotOwner(t *testing.T) {
	fix := createTestCheckInService(t)
	ctx := context.Background()

	fix.checkInRepo.On("FindActiveByID", ctx, uint64(9)).
		Return(&entity.CheckIn{ID: 9, UserID: 42, PlaceID: 2}, nil)

	err := fix.service.CancelCheckIn(ctx, &usecase.CancelCheckInInput{UserID: 1, CheckInID: 9})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	fix.checkInRepo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckInService_CancelCheckIn_MissingOrCancelled(t *testing.T) {
	fix := createTestCheckInService(t)
	ctx := context.Background()

	fix.checkInRepo.On("FindActiveByID", ctx, uint64(9)).
		Return(nil, repository.ErrCheckInNotFound)

	err := fix.service.CancelCheckIn(ctx, &usecase.CancelCheckInInput{UserID: 1, CheckInID: 9})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCheckIn)
}
