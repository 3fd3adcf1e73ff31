package handler

import (
	"net/http"

	"homestay/internal/delivery/http/response"
	domainerrors "homestay/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindInput decodes the request body into input. A body that cannot be
// decoded is reported as malformed rather than as a server failure.
func bindInput(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrMalformedBody.WithDetails(err.Error())
	}

	return errors.WithStack(c.Validate(input))
}

// pathID parses the named path parameter as a UUID. A value that is not
// a UUID cannot address any stored entity, so the caller's not-found
// error is returned directly.
func pathID(c echo.Context, name string, notFound *domainerrors.BaseError) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, notFound.WithDetails("'" + c.Param(name) + "' is not a valid id")
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
