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

// PlaceHandler holds dependencies for place-related handlers.
type PlaceHandler struct {
	uc     usecase.PlaceUsecase
	logger *slog.Logger
}

// NewPlaceHandler is the constructor for PlaceHandler, injected by Fx.
func NewPlaceHandler(uc usecase.PlaceUsecase, logger *slog.Logger) *PlaceHandler {
	return &PlaceHandler{uc: uc, logger: logger}
}

// List handles the request to list every place.
func (h *PlaceHandler) List(c echo.Context) error {
	places, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlaceResponses(places), "Places retrieved successfully")
}

// Get handles the request to fetch a single place by ID.
func (h *PlaceHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrPlaceNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	place, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlaceResponse(place), "Place retrieved successfully")
}

// Create handles the place creation request.
func (h *PlaceHandler) Create(c echo.Context) error {
	input := new(usecase.CreatePlaceInput)
	if err := bindInput(c, input); err != nil {
		return errors.WithStack(err)
	}

	place, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlaceResponse(place), "Place created successfully")
}

// Update handles the partial place update request.
func (h *PlaceHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrPlaceNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.UpdatePlaceInput)
	if err := bindInput(c, input); err != nil {
		return errors.WithStack(err)
	}

	place, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlaceResponse(place), "Place updated successfully")
}

// Delete handles the place deletion request.
func (h *PlaceHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrPlaceNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Place deleted successfully")
}

// Host handles the request to fetch the user hosting a place. The
// password digest stays out of this view.
func (h *PlaceHandler) Host(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrPlaceNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	host, err := h.uc.HostOfPlace(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toHostResponse(host), "Host retrieved successfully")
}

// City handles the request to fetch the city a place sits in.
func (h *PlaceHandler) City(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrPlaceNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	city, err := h.uc.CityOfPlace(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCityResponse(city), "City retrieved successfully")
}

// Reviews handles the request to list the reviews filed against a place.
func (h *PlaceHandler) Reviews(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrPlaceNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	reviews, err := h.uc.ReviewsOfPlace(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewResponses(reviews), "Reviews retrieved successfully")
}

// Amenities handles the request to list the amenity names offered by a
// place.
func (h *PlaceHandler) Amenities(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrPlaceNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	names, err := h.uc.AmenityNamesOfPlace(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, names, "Amenities retrieved successfully")
}

// AttachAmenity handles the request to link an amenity to a place.
func (h *PlaceHandler) AttachAmenity(c echo.Context) error {
	placeID, err := pathID(c, "id", domainerrors.ErrPlaceNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	amenityID, err := pathID(c, "amenity_id", domainerrors.ErrAmenityNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.AttachAmenity(c.Request().Context(), placeID, amenityID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Amenity attached successfully")
}

// DetachAmenity handles the request to unlink an amenity from a place.
func (h *PlaceHandler) DetachAmenity(c echo.Context) error {
	placeID, err := pathID(c, "id", domainerrors.ErrPlaceNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	amenityID, err := pathID(c, "amenity_id", domainerrors.ErrAmenityNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DetachAmenity(c.Request().Context(), placeID, amenityID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Amenity detached successfully")
}
