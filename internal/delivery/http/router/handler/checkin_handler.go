package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "placelog/internal/delivery/context"
	"placelog/internal/delivery/http/response"
	domainerrors "placelog/internal/domain/errors"
	"placelog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// checkInDateLayout renders check-in instants with date-only granularity.
const checkInDateLayout = "2006-01-02"

// CheckInHandler holds dependencies for check-in handlers.
type CheckInHandler struct {
	uc     usecase.CheckInUsecase
	logger *slog.Logger
}

// NewCheckInHandler is the constructor for CheckInHandler, injected by Fx.
func NewCheckInHandler(uc usecase.CheckInUsecase, logger *slog.Logger) *CheckInHandler {
	return &CheckInHandler{
		uc:     uc,
		logger: logger,
	}
}

type checkInView struct {
	ID        uint64 `json:"id"`
	PlaceID   uint64 `json:"place_id"`
	CreatedAt string `json:"created_at"`
}

// Create handles the check-in request for the authenticated user.
func (h *CheckInHandler) Create(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	placeID, err := parsePlaceID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.CheckIn(c.Request().Context(), &usecase.CheckInInput{
		UserID:  userID,
		PlaceID: placeID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, checkInView{
		ID:        output.CheckIn.ID,
		PlaceID:   output.CheckIn.PlaceID,
		CreatedAt: output.CheckIn.CreatedAt.Format(checkInDateLayout),
	}, "CHECKED_IN")
}

// List handles the check-in history request for the authenticated user at
// one place.
func (h *CheckInHandler) List(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	placeID, err := parsePlaceID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.ListCheckIns(c.Request().Context(), &usecase.CheckInInput{
		UserID:  userID,
		PlaceID: placeID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]checkInView, 0, len(output.CheckIns))
	for _, checkIn := range output.CheckIns {
		views = append(views, checkInView{
			ID:        checkIn.ID,
			PlaceID:   checkIn.PlaceID,
			CreatedAt: checkIn.CreatedAt.Format(checkInDateLayout),
		})
	}

	return response.Success(c, http.StatusOK, map[string]any{"result": views}, "SUCCESS")
}

// Cancel handles the check-in cancellation request.
func (h *CheckInHandler) Cancel(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	checkInID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return domainerrors.ErrInvalidCheckIn.WrapMessage("malformed check-in id")
	}

	if err := h.uc.CancelCheckIn(c.Request().Context(), &usecase.CancelCheckInInput{
		UserID:    userID,
		CheckInID: checkInID,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// requireUserID reads the authenticated user set by the auth middleware.
func requireUserID(c echo.Context) (uint64, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return 0, domainerrors.ErrInvalidToken.WrapMessage("request reached a protected handler without authentication")
	}

	return userID, nil
}
