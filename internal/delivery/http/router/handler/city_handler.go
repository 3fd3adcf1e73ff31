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

// CityHandler holds dependencies for city-related handlers.
type CityHandler struct {
	uc     usecase.CityUsecase
	logger *slog.Logger
}

// NewCityHandler is the constructor for CityHandler, injected by Fx.
func NewCityHandler(uc usecase.CityUsecase, logger *slog.Logger) *CityHandler {
	return &CityHandler{uc: uc, logger: logger}
}

// List handles the request to list every city.
func (h *CityHandler) List(c echo.Context) error {
	cities, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCityResponses(cities), "Cities retrieved successfully")
}

// Get handles the request to fetch a single city by ID.
func (h *CityHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrCityNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	city, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCityResponse(city), "City retrieved successfully")
}

// Create handles the city creation request.
func (h *CityHandler) Create(c echo.Context) error {
	input := new(usecase.CreateCityInput)
	if err := bindInput(c, input); err != nil {
		return errors.WithStack(err)
	}

	city, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCityResponse(city), "City created successfully")
}

// Update handles the partial city update request.
func (h *CityHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrCityNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.UpdateCityInput)
	if err := bindInput(c, input); err != nil {
		return errors.WithStack(err)
	}

	city, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCityResponse(city), "City updated successfully")
}

// Delete handles the city deletion request.
func (h *CityHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrCityNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "City deleted successfully")
}

// Country handles the request to fetch the country a city belongs to.
func (h *CityHandler) Country(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrCityNotFound)
	if err != nil {
		return errors.WithStack(err)
	}

	country, err := h.uc.CountryOfCity(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCountryResponse(country), "Country retrieved successfully")
}
