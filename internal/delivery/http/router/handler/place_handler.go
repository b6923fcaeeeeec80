package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"placelog/internal/delivery/http/response"
	"placelog/internal/domain/entity"
	domainerrors "placelog/internal/domain/errors"
	"placelog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlaceHandler holds dependencies for place registry handlers.
type PlaceHandler struct {
	uc     usecase.PlaceUsecase
	logger *slog.Logger
}

// NewPlaceHandler is the constructor for PlaceHandler, injected by Fx.
func NewPlaceHandler(uc usecase.PlaceUsecase, logger *slog.Logger) *PlaceHandler {
	return &PlaceHandler{
		uc:     uc,
		logger: logger,
	}
}

type placeRequest struct {
	Name        string `json:"name" validate:"required"`
	PlaceType   string `json:"place_type" validate:"required"`
	MetroRegion string `json:"metro_region" validate:"required"`
	LocalRegion string `json:"local_region" validate:"required"`
	RoadAddress string `json:"road_address" validate:"required"`
}

// placeView is the denormalized shape place reads return: reference rows
// flattened to their names.
type placeView struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	PlaceType   string `json:"place_type"`
	MetroRegion string `json:"metro_region"`
	LocalRegion string `json:"local_region"`
	RoadAddress string `json:"road_address"`
	CreatedAt   string `json:"created_at"`
}

// Register handles the place registration request.
func (h *PlaceHandler) Register(c echo.Context) error {
	var req placeRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrKeyError.WrapMessage("invalid place payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RegisterPlace(c.Request().Context(), &usecase.RegisterPlaceInput{
		Name:        req.Name,
		PlaceType:   req.PlaceType,
		MetroRegion: req.MetroRegion,
		LocalRegion: req.LocalRegion,
		RoadAddress: req.RoadAddress,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toPlaceView(output.Place), "PLACE_CREATED")
}

// List handles the active place listing request.
func (h *PlaceHandler) List(c echo.Context) error {
	output, err := h.uc.ListPlaces(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]placeView, 0, len(output.Places))
	for _, place := range output.Places {
		views = append(views, toPlaceView(place))
	}

	return response.Success(c, http.StatusOK, map[string]any{"result": views}, "SUCCESS")
}

// Get handles the single place read request.
func (h *PlaceHandler) Get(c echo.Context) error {
	placeID, err := parsePlaceID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetPlace(c.Request().Context(), placeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlaceView(output.Place), "SUCCESS")
}

// Update handles the place update request.
func (h *PlaceHandler) Update(c echo.Context) error {
	placeID, err := parsePlaceID(c)
	if err != nil {
		return err
	}

	var req placeRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrKeyError.WrapMessage("invalid place payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.UpdatePlace(c.Request().Context(), &usecase.UpdatePlaceInput{
		PlaceID:     placeID,
		Name:        req.Name,
		PlaceType:   req.PlaceType,
		MetroRegion: req.MetroRegion,
		LocalRegion: req.LocalRegion,
		RoadAddress: req.RoadAddress,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlaceView(output.Place), "PLACE_UPDATED")
}

// Delete handles the place soft-delete request.
func (h *PlaceHandler) Delete(c echo.Context) error {
	placeID, err := parsePlaceID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeletePlace(c.Request().Context(), placeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "PLACE_DELETED")
}

// parsePlaceID reads the path parameter; a non-numeric id reports the same
// error as a missing place.
func parsePlaceID(c echo.Context) (uint64, error) {
	placeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrInvalidPlace.WrapMessage("malformed place id")
	}

	return placeID, nil
}

func toPlaceView(place *entity.Place) placeView {
	view := placeView{
		ID:          place.ID,
		Name:        place.Name,
		RoadAddress: place.RoadAddress,
		CreatedAt:   place.CreatedAt.Format(time.RFC3339),
	}
	if place.PlaceType != nil {
		view.PlaceType = place.PlaceType.Name
	}
	if place.Region != nil {
		view.LocalRegion = place.Region.Name
		if place.Region.MetroRegion != nil {
			view.MetroRegion = place.Region.MetroRegion.Name
		}
	}

	return view
}
