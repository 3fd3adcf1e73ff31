package handler

import (
	"log/slog"
	"net/http"

	"homestay/internal/delivery/http/response"
	domainerrors "homestay/internal/domain/errors"
	"homestay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for review-related handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, logger: logger}
}

// List handles the request to list every review.
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewResponses(reviews), "Reviews retrieved successfully")
}

// Get handles the request to fetch a single review by ID.
func (h *ReviewHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrReviewNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	review, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewResponse(review), "Review retrieved successfully")
}

// Create handles the review creation request.
func (h *ReviewHandler) Create(c echo.Context) error {
	input := new(usecase.CreateReviewInput)
	if err := bindInput(c, input); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewResponse(review), "Review created successfully")
}

// Update handles the partial review update request.
func (h *ReviewHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrReviewNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.UpdateReviewInput)
	if err := bindInput(c, input); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewResponse(review), "Review updated successfully")
}

// Delete handles the review deletion request.
func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrReviewNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted successfully")
}

// Place handles the request to fetch the place a review was filed
// against.
func (h *ReviewHandler) Place(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrReviewNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	place, err := h.uc.PlaceOfReview(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlaceResponse(place), "Place retrieved successfully")
}

// User handles the request to fetch the commentor of a review.
func (h *ReviewHandler) User(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrReviewNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UserOfReview(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User retrieved successfully")
}
