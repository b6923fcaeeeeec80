package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"placelog/internal/domain/entity"
	"placelog/internal/domain/repository"
	domainservice "placelog/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passthroughTxManager satisfies repository.TransactionManager without a real
// database: Execute simply invokes the callback with a fixed factory.
type passthroughTxManager struct {
	factory repository.RepositoryFactory
}

func (tm *passthroughTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}

// stubRepoFactory hands out the test doubles as transaction-bound repositories.
type stubRepoFactory struct {
	userRepo    repository.UserRepository
	placeRepo   repository.PlaceRepository
	regionRepo  repository.RegionRepository
	checkInRepo repository.CheckInRepository
	reviewRepo  repository.ReviewRepository
}

func (f *stubRepoFactory) UserRepo() repository.UserRepository       { return f.userRepo }
func (f *stubRepoFactory) PlaceRepo() repository.PlaceRepository     { return f.placeRepo }
func (f *stubRepoFactory) RegionRepo() repository.RegionRepository   { return f.regionRepo }
func (f *stubRepoFactory) CheckInRepo() repository.CheckInRepository { return f.checkInRepo }
func (f *stubRepoFactory) ReviewRepo() repository.ReviewRepository   { return f.reviewRepo }

// --- repository doubles ---

type mockUserRepository struct{ mock.Mock }

func (m *mockUserRepository) FindByID(ctx context.Context, id uint64) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)

	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) ExistsByNickname(ctx context.Context, nickname string) (bool, error) {
	args := m.Called(ctx, nickname)

	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

type mockPlaceRepository struct{ mock.Mock }

func (m *mockPlaceRepository) FindByID(ctx context.Context, id uint64) (*entity.Place, error) {
	args := m.Called(ctx, id)
	place, _ := args.Get(0).(*entity.Place)

	return place, args.Error(1)
}

func (m *mockPlaceRepository) ListActive(ctx context.Context) ([]*entity.Place, error) {
	args := m.Called(ctx)
	places, _ := args.Get(0).([]*entity.Place)

	return places, args.Error(1)
}

func (m *mockPlaceRepository) ExistsActiveDuplicate(ctx context.Context, name string, placeTypeID uint64, roadAddress string, regionID uint64) (bool, error) {
	args := m.Called(ctx, name, placeTypeID, roadAddress, regionID)

	return args.Bool(0), args.Error(1)
}

func (m *mockPlaceRepository) Create(ctx context.Context, place *entity.Place) error {
	args := m.Called(ctx, place)

	return args.Error(0)
}

func (m *mockPlaceRepository) Update(ctx context.Context, place *entity.Place) error {
	args := m.Called(ctx, place)

	return args.Error(0)
}

func (m *mockPlaceRepository) SoftDelete(ctx context.Context, id uint64, at time.Time) error {
	args := m.Called(ctx, id, at)

	return args.Error(0)
}

type mockRegionRepository struct{ mock.Mock }

func (m *mockRegionRepository) FindMetroRegionByName(ctx context.Context, name string) (*entity.MetroRegion, error) {
	args := m.Called(ctx, name)
	metro, _ := args.Get(0).(*entity.MetroRegion)

	return metro, args.Error(1)
}

func (m *mockRegionRepository) FindLocalRegionByName(ctx context.Context, name string, metroRegionID uint64) (*entity.LocalRegion, error) {
	args := m.Called(ctx, name, metroRegionID)
	region, _ := args.Get(0).(*entity.LocalRegion)

	return region, args.Error(1)
}

func (m *mockRegionRepository) FindPlaceTypeByName(ctx context.Context, name string) (*entity.PlaceType, error) {
	args := m.Called(ctx, name)
	placeType, _ := args.Get(0).(*entity.PlaceType)

	return placeType, args.Error(1)
}

type mockCheckInRepository struct{ mock.Mock }

func (m *mockCheckInRepository) FindActiveByID(ctx context.Context, id uint64) (*entity.CheckIn, error) {
	args := m.Called(ctx, id)
	checkIn, _ := args.Get(0).(*entity.CheckIn)

	return checkIn, args.Error(1)
}

func (m *mockCheckInRepository) FindLatestActive(ctx context.Context, userID, placeID uint64) (*entity.CheckIn, error) {
	args := m.Called(ctx, userID, placeID)
	checkIn, _ := args.Get(0).(*entity.CheckIn)

	return checkIn, args.Error(1)
}

func (m *mockCheckInRepository) ListActive(ctx context.Context, userID, placeID uint64) ([]*entity.CheckIn, error) {
	args := m.Called(ctx, userID, placeID)
	checkIns, _ := args.Get(0).([]*entity.CheckIn)

	return checkIns, args.Error(1)
}

func (m *mockCheckInRepository) Create(ctx context.Context, checkIn *entity.CheckIn) error {
	args := m.Called(ctx, checkIn)

	return args.Error(0)
}

func (m *mockCheckInRepository) SoftDelete(ctx context.Context, id uint64, at time.Time) error {
	args := m.Called(ctx, id, at)

	return args.Error(0)
}

type mockReviewRepository struct{ mock.Mock }

func (m *mockReviewRepository) FindActiveByID(ctx context.Context, id uint64) (*entity.Review, error) {
	args := m.Called(ctx, id)
	review, _ := args.Get(0).(*entity.Review)

	return review, args.Error(1)
}

func (m *mockReviewRepository) ListActiveByPlace(ctx context.Context, placeID uint64) ([]*entity.Review, error) {
	args := m.Called(ctx, placeID)
	reviews, _ := args.Get(0).([]*entity.Review)

	return reviews, args.Error(1)
}

func (m *mockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)

	return args.Error(0)
}

func (m *mockReviewRepository) UpdateBody(ctx context.Context, id uint64, body string) error {
	args := m.Called(ctx, id, body)

	return args.Error(0)
}

func (m *mockReviewRepository) SoftDelete(ctx context.Context, id uint64, at time.Time) error {
	args := m.Called(ctx, id, at)

	return args.Error(0)
}

// --- service doubles ---

type mockPasswordHasher struct{ mock.Mock }

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct{ mock.Mock }

func (m *mockTokenService) IssueToken(userID uint64) (string, error) {
	args := m.Called(userID)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) VerifyToken(tokenString string) (*domainservice.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*domainservice.Claims)

	return claims, args.Error(1)
}
