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

// AmenityHandler holds dependencies for amenity-related handlers.
type AmenityHandler struct {
	uc     usecase.AmenityUsecase
	logger *slog.Logger
}

// NewAmenityHandler is the constructor for AmenityHandler, injected by Fx.
func NewAmenityHandler(uc usecase.AmenityUsecase, logger *slog.Logger) *AmenityHandler {
	return &AmenityHandler{uc: uc, logger: logger}
}

// List handles the request to list every amenity.
func (h *AmenityHandler) List(c echo.Context) error {
	amenities, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAmenityResponses(amenities), "Amenities retrieved successfully")
}

// Get handles the request to fetch a single amenity by ID.
func (h *AmenityHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrAmenityNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	amenity, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAmenityResponse(amenity), "Amenity retrieved successfully")
}

// Create handles the amenity creation request.
func (h *AmenityHandler) Create(c echo.Context) error {
	input := new(usecase.CreateAmenityInput)
	if err := bindInput(c, input); err != nil {
		return errors.WithStack(err)
	}

	amenity, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAmenityResponse(amenity), "Amenity created successfully")
}

// Update handles the amenity rename request.
func (h *AmenityHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrAmenityNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.UpdateAmenityInput)
	if err := bindInput(c, input); err != nil {
		return errors.WithStack(err)
	}

	amenity, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAmenityResponse(amenity), "Amenity updated successfully")
}

// Delete handles the amenity deletion request.
func (h *AmenityHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrAmenityNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Amenity deleted successfully")
}

// Places handles the request to list the IDs of the places offering an
// amenity.
func (h *AmenityHandler) Places(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrAmenityNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	placeIDs, err := h.uc.PlacesOfAmenity(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	ids := make([]string, 0, len(placeIDs))
	for _, placeID := range placeIDs {
		ids = append(ids, placeID.String())
	}

	return response.Success(c, http.StatusOK, ids, "Places retrieved successfully")
}
