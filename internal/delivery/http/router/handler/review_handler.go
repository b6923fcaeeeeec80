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

// ReviewHandler holds dependencies for review ledger handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

type reviewRequest struct {
	Content string `json:"content" validate:"required"`
}

type reviewView struct {
	ID        uint64 `json:"id"`
	PlaceID   uint64 `json:"place_id"`
	Nickname  string `json:"nickname,omitempty"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// Create handles posting a review on a place.
func (h *ReviewHandler) Create(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	placeID, err := parseReviewPlaceID(c)
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrKeyError.WrapMessage("invalid review payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.WriteReview(c.Request().Context(), &usecase.WriteReviewInput{
		UserID:  userID,
		PlaceID: placeID,
		Body:    req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toReviewView(output.Review), "REVIEW_CREATED")
}

// List handles the open review listing for a place.
func (h *ReviewHandler) List(c echo.Context) error {
	placeID, err := parseReviewPlaceID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.ListReviews(c.Request().Context(), placeID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]reviewView, 0, len(output.Reviews))
	for _, review := range output.Reviews {
		views = append(views, toReviewView(review))
	}

	return response.Success(c, http.StatusOK, map[string]any{"result": views}, "SUCCESS")
}

// Update handles rewriting a review's content. Owner-only.
func (h *ReviewHandler) Update(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	reviewID, err := parseReviewID(c)
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrKeyError.WrapMessage("invalid review payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.UpdateReview(c.Request().Context(), &usecase.UpdateReviewInput{
		UserID:   userID,
		ReviewID: reviewID,
		Body:     req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewView(output.Review), "REVIEW_UPDATED")
}

// Delete handles soft-deleting a review. Owner-only.
func (h *ReviewHandler) Delete(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	reviewID, err := parseReviewID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteReview(c.Request().Context(), &usecase.DeleteReviewInput{
		UserID:   userID,
		ReviewID: reviewID,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// parseReviewPlaceID reads the place id parameter on review routes, where a
// bad place is a 400 rather than the place endpoints' 401.
func parseReviewPlaceID(c echo.Context) (uint64, error) {
	placeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrInvalidPlaceForReview.WrapMessage("malformed place id")
	}

	return placeID, nil
}

func parseReviewID(c echo.Context) (uint64, error) {
	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrInvalidReview.WrapMessage("malformed review id")
	}

	return reviewID, nil
}

func toReviewView(review *entity.Review) reviewView {
	view := reviewView{
		ID:        review.ID,
		PlaceID:   review.PlaceID,
		Content:   review.Body,
		CreatedAt: review.CreatedAt.Format(time.RFC3339),
	}
	if review.Author != nil {
		view.Nickname = review.Author.Nickname
	}

	return view
}
