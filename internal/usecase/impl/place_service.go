package impl

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	deliverycontext "placelog/internal/delivery/context"
	"placelog/internal/domain/entity"
	domainerrors "placelog/internal/domain/errors"
	"placelog/internal/domain/repository"
	"placelog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// roadAddressPattern accepts a Korean road address: a road (로/길) segment
// followed by a building number, or a neighborhood (읍/동) segment followed
// by a number.
var roadAddressPattern = regexp.MustCompile(`(([가-힣A-Za-z·\d~\-\.]{2,}(로|길).[\d]+)|([가-힣A-Za-z·\d~\-\.]+(읍|동)\s)[\d]+)`)

// placeService implements the PlaceUsecase interface.
type placeService struct {
	txManager  repository.TransactionManager
	placeRepo  repository.PlaceRepository
	regionRepo repository.RegionRepository
	// deletedPolicy controls whether reads report a soft-deleted place as
	// "deleted" or as plain "invalid".
	deletedPolicy entity.DeletionPolicy
	logger        *slog.Logger
}

// PlaceServiceParams holds dependencies for placeService, injected by Fx.
type PlaceServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	PlaceRepo  repository.PlaceRepository
	RegionRepo repository.RegionRepository
	Logger     *slog.Logger
}

// NewPlaceService is the constructor for placeService.
func NewPlaceService(params PlaceServiceParams) usecase.PlaceUsecase {
	return &placeService{
		txManager:     params.TxManager,
		placeRepo:     params.PlaceRepo,
		regionRepo:    params.RegionRepo,
		deletedPolicy: entity.DistinguishDeleted,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *placeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterPlace resolves the reference data, validates the address shape and
// creates the place if no active duplicate exists. Reference lookups run
// before the address check, so a request that fails both reports the unknown
// type or region.
func (srv *placeService) RegisterPlace(ctx context.Context, input *usecase.RegisterPlaceInput) (*usecase.PlaceOutput, error) {
	srv.log(ctx).Info("Registering place", slog.String("name", input.Name))

	placeType, region, err := srv.resolveReferences(ctx, input.PlaceType, input.MetroRegion, input.LocalRegion)
	if err != nil {
		return nil, err
	}

	if !roadAddressPattern.MatchString(input.RoadAddress) {
		srv.log(ctx).Warn("Road address validation failed", slog.String("roadAddress", input.RoadAddress))

		return nil, errors.Wrap(domainerrors.ErrInvalidRoadAddressFormat, "place registration rejected")
	}

	newPlace := &entity.Place{
		Name:        input.Name,
		PlaceType:   placeType,
		Region:      region,
		RoadAddress: input.RoadAddress,
	}

	// Duplicate check and insert share a transaction; only active rows count
	// toward duplication, so a deleted place can be re-registered.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		placeRepo := repoFactory.PlaceRepo()

		taken, err := placeRepo.ExistsActiveDuplicate(ctx, input.Name, placeType.ID, input.RoadAddress, region.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check place uniqueness")
		}
		if taken {
			return errors.Wrap(domainerrors.ErrPlaceExists, "place registration rejected")
		}

		return placeRepo.Create(ctx, newPlace)
	})
	if err != nil {
		srv.log(ctx).Warn("Place registration failed", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Place registered", slog.Uint64("placeID", newPlace.ID))

	return &usecase.PlaceOutput{Place: newPlace}, nil
}

// GetPlace retrieves a single place. A soft-deleted place reports its
// deletion state per the configured policy rather than pretending absence.
func (srv *placeService) GetPlace(ctx context.Context, placeID uint64) (*usecase.PlaceOutput, error) {
	place, err := srv.loadPlace(ctx, srv.placeRepo, placeID, domainerrors.ErrDeletedPlace)
	if err != nil {
		return nil, err
	}

	return &usecase.PlaceOutput{Place: place}, nil
}

// ListPlaces returns all active places.
func (srv *placeService) ListPlaces(ctx context.Context) (*usecase.PlaceListOutput, error) {
	places, err := srv.placeRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list places")
	}

	return &usecase.PlaceListOutput{Places: places}, nil
}

// UpdatePlace replaces a place's mutable fields. The duplicate check is a
// creation-time rule only; updates may collide with existing tuples.
func (srv *placeService) UpdatePlace(ctx context.Context, input *usecase.UpdatePlaceInput) (*usecase.PlaceOutput, error) {
	srv.log(ctx).Info("Updating place", slog.Uint64("placeID", input.PlaceID))

	placeType, region, err := srv.resolveReferences(ctx, input.PlaceType, input.MetroRegion, input.LocalRegion)
	if err != nil {
		return nil, err
	}

	if !roadAddressPattern.MatchString(input.RoadAddress) {
		srv.log(ctx).Warn("Road address validation failed", slog.String("roadAddress", input.RoadAddress))

		return nil, errors.Wrap(domainerrors.ErrInvalidRoadAddressFormat, "place update rejected")
	}

	var updated *entity.Place
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		placeRepo := repoFactory.PlaceRepo()

		place, err := srv.loadPlace(ctx, placeRepo, input.PlaceID, domainerrors.ErrDeletedPlace)
		if err != nil {
			return err
		}

		place.Name = input.Name
		place.PlaceType = placeType
		place.Region = region
		place.RoadAddress = input.RoadAddress

		if err := placeRepo.Update(ctx, place); err != nil {
			return errors.Wrap(err, "failed to update place")
		}
		updated = place

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Place update failed", slog.Uint64("placeID", input.PlaceID), slog.Any("error", err))

		return nil, err
	}

	return &usecase.PlaceOutput{Place: updated}, nil
}

// DeletePlace soft-deletes a place. Deleting an already-deleted place is
// reported distinctly so a retried delete is visible to the caller.
func (srv *placeService) DeletePlace(ctx context.Context, placeID uint64) error {
	srv.log(ctx).Info("Deleting place", slog.Uint64("placeID", placeID))

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		placeRepo := repoFactory.PlaceRepo()

		if _, err := srv.loadPlace(ctx, placeRepo, placeID, domainerrors.ErrPlaceAlreadyDeleted); err != nil {
			return err
		}

		if err := placeRepo.SoftDelete(ctx, placeID, time.Now()); err != nil {
			return errors.Wrap(err, "failed to soft-delete place")
		}

		return nil
	})
}

// loadPlace fetches a place and maps its deletion state: missing rows become
// ErrInvalidPlace, soft-deleted rows become deletedErr under the configured
// policy.
func (srv *placeService) loadPlace(ctx context.Context, placeRepo repository.PlaceRepository, placeID uint64, deletedErr error) (*entity.Place, error) {
	place, err := placeRepo.FindByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidPlace, "place lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find place")
	}

	if err := entity.ResolveDeleted(place.DeletedAt, srv.deletedPolicy, deletedErr, domainerrors.ErrInvalidPlace); err != nil {
		return nil, errors.Wrap(err, "place lookup failed")
	}

	return place, nil
}

// resolveReferences maps the free-text type and region names onto reference
// rows. Local region names repeat across metro regions, so the lookup is
// metro-scoped.
func (srv *placeService) resolveReferences(ctx context.Context, placeTypeName, metroName, localName string) (*entity.PlaceType, *entity.LocalRegion, error) {
	placeType, err := srv.regionRepo.FindPlaceTypeByName(ctx, placeTypeName)
	if err != nil {
		if errors.Is(err, repository.ErrPlaceTypeNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrInvalidPlaceType, "unknown place type")
		}

		return nil, nil, errors.Wrap(err, "failed to resolve place type")
	}

	metro, err := srv.regionRepo.FindMetroRegionByName(ctx, metroName)
	if err != nil {
		if errors.Is(err, repository.ErrRegionNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrInvalidRegion, "unknown metro region")
		}

		return nil, nil, errors.Wrap(err, "failed to resolve metro region")
	}

	region, err := srv.regionRepo.FindLocalRegionByName(ctx, localName, metro.ID)
	if err != nil {
		if errors.Is(err, repository.ErrRegionNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrInvalidRegion, "unknown local region")
		}

		return nil, nil, errors.Wrap(err, "failed to resolve local region")
	}

	return placeType, region, nil
}
