package handler

import (
	"log/slog"
	"net/http"

	"homestay/internal/delivery/http/response"
	"homestay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CountryHandler holds dependencies for country-related handlers.
// Countries are addressed by their alpha code, not by ID.
type CountryHandler struct {
	uc     usecase.CountryUsecase
	logger *slog.Logger
}

// NewCountryHandler is the constructor for CountryHandler, injected by Fx.
func NewCountryHandler(uc usecase.CountryUsecase, logger *slog.Logger) *CountryHandler {
	return &CountryHandler{uc: uc, logger: logger}
}

// List handles the request to list every country.
func (h *CountryHandler) List(c echo.Context) error {
	countries, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCountryResponses(countries), "Countries retrieved successfully")
}

// Get handles the request to fetch a single country by code.
func (h *CountryHandler) Get(c echo.Context) error {
	country, err := h.uc.GetByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCountryResponse(country), "Country retrieved successfully")
}

// Create handles the country creation request.
func (h *CountryHandler) Create(c echo.Context) error {
	input := new(usecase.CreateCountryInput)
	if err := bindInput(c, input); err != nil {
		return errors.WithStack(err)
	}

	country, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCountryResponse(country), "Country created successfully")
}

// Update handles the country rename request. The code itself is not
// mutable through this path.
func (h *CountryHandler) Update(c echo.Context) error {
	input := new(usecase.UpdateCountryInput)
	if err := bindInput(c, input); err != nil {
		return errors.WithStack(err)
	}

	country, err := h.uc.UpdateByCode(c.Request().Context(), c.Param("code"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCountryResponse(country), "Country updated successfully")
}

// Cities handles the request to list the cities belonging to a country.
func (h *CountryHandler) Cities(c echo.Context) error {
	cities, err := h.uc.CitiesOfCountry(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCityResponses(cities), "Cities retrieved successfully")
}
