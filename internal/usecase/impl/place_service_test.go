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

type placeServiceFixtures struct {
	service    usecase.PlaceUsecase
	placeRepo  *mockPlaceRepository
	regionRepo *mockRegionRepository
}

func createTestPlaceService(t *testing.T) placeServiceFixtures {
	t.Helper()

	placeRepo := &mockPlaceRepository{}
	regionRepo := &mockRegionRepository{}
	txManager := &passthroughTxManager{factory: &stubRepoFactory{placeRepo: placeRepo, regionRepo: regionRepo}}

	service := NewPlaceService(PlaceServiceParams{
		TxManager:  txManager,
		PlaceRepo:  placeRepo,
		RegionRepo: regionRepo,
		Logger:     newDiscardLogger(),
	})

	return placeServiceFixtures{
		service:    service,
		placeRepo:  placeRepo,
		regionRepo: regionRepo,
	}
}

func registerInput() *usecase.RegisterPlaceInput {
	return &usecase.RegisterPlaceInput{
		Name:        "온온카페",
		PlaceType:   "카페",
		MetroRegion: "서울특별시",
		LocalRegion: "강남구",
		RoadAddress: "테헤란로 427",
	}
}

func expectReferenceResolution(fix placeServiceFixtures, ctx context.Context) {
	fix.regionRepo.On("FindPlaceTypeByName", ctx, "카페").
		Return(&entity.PlaceType{ID: 1, Name: "카페"}, nil)
	fix.regionRepo.On("FindMetroRegionByName", ctx, "서울특별시").
		Return(&entity.MetroRegion{ID: 2, Name: "서울특별시"}, nil)
	fix.regionRepo.On("FindLocalRegionByName", ctx, "강남구", uint64(2)).
		Return(&entity.LocalRegion{ID: 3, Name: "강남구", MetroRegion: &entity.MetroRegion{ID: 2, Name: "서울특별시"}}, nil)
}

func TestPlaceService_RegisterPlace_Success(t *testing.T) {
	fix := createTestPlaceService(t)
	ctx := context.Background()

	expectReferenceResolution(fix, ctx)
	fix.placeRepo.On("ExistsActiveDuplicate", ctx, "온온카페", uint64(1), "테헤란로 427", uint64(3)).
		Return(false, nil)
	fix.placeRepo.On("Create", ctx, mock.AnythingOfType("*entity.Place")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Place).ID = 11
		}).
		Return(nil)

	output, err := fix.service.RegisterPlace(ctx, registerInput())
	require.NoError(t, err)
	assert.Equal(t, uint64(11), output.Place.ID)
	assert.Equal(t, "카페", output.Place.PlaceType.Name)
	assert.Equal(t, "강남구", output.Place.Region.Name)
}

func TestPlaceService_RegisterPlace_BadRoadAddress(t *testing.T) {
	fix := createTestPlaceService(t)
	ctx := context.Background()

	expectReferenceResolution(fix, ctx)

	input := registerInput()
	input.RoadAddress = "just some text"

	_, err := fix.service.RegisterPlace(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRoadAddressFormat)
	fix.placeRepo.AssertNotCalled(t, "ExistsActiveDuplicate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceService_RegisterPlace_UnknownTypeReportedBeforeBadAddress(t *testing.T) {
	fix := createTestPlaceService(t)
	ctx := context.Background()

	fix.regionRepo.On("FindPlaceTypeByName", ctx, "카페").
		Return(nil, repository.ErrPlaceTypeNotFound)

	input := registerInput()
	input.RoadAddress = "just some text"

	_, err := fix.service.RegisterPlace(ctx, input)
	// Reference resolution runs first, so the unknown type wins over the
	// malformed address.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPlaceType)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidRoadAddressFormat)
}

func TestPlaceService_RegisterPlace_NeighborhoodAddressAccepted(t *testing.T) {
	fix := createTestPlaceService(t)
	ctx := context.Background()

	expectReferenceResolution(fix, ctx)
	fix.placeRepo.On("ExistsActiveDuplicate", ctx, "온온카페", uint64(1), "성수동 12", uint64(3)).
		Return(false, nil)
	fix.placeRepo.On("Create", ctx, mock.AnythingOfType("*entity.Place")).Return(nil)

	input := registerInput()
	input.RoadAddress = "성수동 12"

	_, err := fix.service.RegisterPlace(ctx, input)
	require.NoError(t, err)
}

func TestPlaceService_RegisterPlace_UnknownPlaceType(t *testing.T) {
	fix := createTestPlaceService(t)
	ctx := context.Background()

	fix.regionRepo.On("FindPlaceTypeByName", ctx, "카페").
		Return(nil, repository.ErrPlaceTypeNotFound)

	_, err := fix.service.RegisterPlace(ctx, registerInput())
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPlaceType)
}

func TestPlaceService_RegisterPlace_UnknownRegion(t *testing.T) {
	fix := createTestPlaceService(t)
	ctx := context.Background()

	fix.regionRepo.On("FindPlaceTypeByName", ctx, "카페").
		Return(&entity.PlaceType{ID: 1, Name: "카페"}, nil)
	fix.regionRepo.On("FindMetroRegionByName", ctx, "서울특별시").
		Return(nil, repository.ErrRegionNotFound)

	_, err := fix.service.RegisterPlace(ctx, registerInput())
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRegion)
}

func TestPlaceService_RegisterPlace_ActiveDuplicate(t *testing.T) {
	fix := createTestPlaceService(t)
	ctx := context.Background()

	expectReferenceResolution(fix, ctx)
	fix.placeRepo.On("ExistsActiveDuplicate", ctx, "온온카페", uint64(1), "테헤란로 427", uint64(3)).
		Return(true, nil)

	_, err := fix.service.RegisterPlace(ctx, registerInput())
	assert.ErrorIs(t, err, domainerrors.ErrPlaceExists)
	fix.placeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceService_GetPlace_Deleted(t *testing.T) {
	fix := createTestPlaceService(t)
	ctx := context.Background()

	deletedAt := time.Now().Add(-time.Hour)
	fix.placeRepo.On("FindByID", ctx, uint64(5)).
		Return(&entity.Place{ID: 5, DeletedAt: &deletedAt}, nil)

	_, err := fix.service.GetPlace(ctx, 5)
	// Deleted and missing report differently on place reads.
	assert.ErrorIs(t, err, domainerrors.ErrDeletedPlace)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidPlace)
}

func TestPlaceService_GetPlace_Missing(t *testing.T) {
	fix := createTestPlaceService(t)
	ctx := context.Background()

	fix.placeRepo.On("FindByID", ctx, uint64(5)).
		Return(nil, repository.ErrPlaceNotFound)

	_, err := fix.service.GetPlace(ctx, 5)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPlace)
}

func TestPlaceService_UpdatePlace_Success(t *testing.T) {
	fix := createTestPlaceService(t)
	ctx := context.Background()

	expectReferenceResolution(fix, ctx)
	fix.placeRepo.On("FindByID", ctx, uint64(5)).
		Return(&entity.Place{ID: 5, Name: "옛이름", RoadAddress: "테헤란로 1"}, nil)
	fix.placeRepo.On("Update", ctx, mock.AnythingOfType("*entity.Place")).Return(nil)

	output, err := fix.service.UpdatePlace(ctx, &usecase.UpdatePlaceInput{
		PlaceID:     5,
		Name:        "온온카페",
		PlaceType:   "카페",
		MetroRegion: "서울특별시",
		LocalRegion: "강남구",
		RoadAddress: "테헤란로 427",
	})
	require.NoError(t, err)
	assert.Equal(t, "온온카페", output.Place.Name)
	assert.Equal(t, "테헤란로 427", output.Place.RoadAddress)
}

func TestPlaceService_DeletePlace_AlreadyDeleted(t *testing.T) {
	fix := createTestPlaceService(t)
	ctx := context.Background()

	deletedAt := time.Now().Add(-time.Hour)
	fix.placeRepo.On("FindByID", ctx, uint64(5)).
		Return(&entity.Place{ID: 5, DeletedAt: &deletedAt}, nil)

	err := fix.service.DeletePlace(ctx, 5)
	assert.ErrorIs(t, err, domainerrors.ErrPlaceAlreadyDeleted)
	fix.placeRepo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceService_DeletePlace_Success(t *testing.T) {
	fix := createTestPlaceService(t)
	ctx := context.Background()

	fix.placeRepo.On("FindByID", ctx, uint64(5)).
		Return(&entity.Place{ID: 5}, nil)
	fix.placeRepo.On("SoftDelete", ctx, uint64(5), mock.AnythingOfType("time.Time")).Return(nil)

	err := fix.service.DeletePlace(ctx, 5)
	require.NoError(t, err)
	fix.placeRepo.AssertExpectations(t)
}
