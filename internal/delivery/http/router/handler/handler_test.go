package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"homestay/internal/delivery/http/middleware"
	"homestay/internal/delivery/http/router"
	"homestay/internal/delivery/http/router/handler"
	"homestay/internal/delivery/http/validator"
	"homestay/internal/infra/auth"
	"homestay/internal/infra/persistence/memory"
	"homestay/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testServer wires handlers against in-memory repositories and mounts
// them on a real Echo instance, so requests exercise binding,
// validation and error translation end to end.
type testServer struct {
	e *echo.Echo
}

func newTestServer() *testServer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := memory.NewUserRepository()
	countryRepo := memory.NewCountryRepository()
	cityRepo := memory.NewCityRepository()
	amenityRepo := memory.NewAmenityRepository()
	reviewRepo := memory.NewReviewRepository()
	placeRepo := memory.NewPlaceRepository()
	linkRepo := memory.NewPlaceAmenityRepository()

	userUC := impl.NewUserService(impl.UserServiceParams{
		UserRepo: userRepo,
		Hasher:   auth.NewBcryptHasher(bcrypt.MinCost),
		Logger:   logger,
	})
	countryUC := impl.NewCountryService(impl.CountryServiceParams{
		CountryRepo: countryRepo,
		CityRepo:    cityRepo,
		Logger:      logger,
	})
	cityUC := impl.NewCityService(impl.CityServiceParams{
		CityRepo:    cityRepo,
		CountryRepo: countryRepo,
		Logger:      logger,
	})
	amenityUC := impl.NewAmenityService(impl.AmenityServiceParams{
		AmenityRepo: amenityRepo,
		LinkRepo:    linkRepo,
		Logger:      logger,
	})
	reviewUC := impl.NewReviewService(impl.ReviewServiceParams{
		ReviewRepo: reviewRepo,
		UserRepo:   userRepo,
		PlaceRepo:  placeRepo,
		Logger:     logger,
	})
	placeUC := impl.NewPlaceService(impl.PlaceServiceParams{
		PlaceRepo:   placeRepo,
		UserRepo:    userRepo,
		CityRepo:    cityRepo,
		ReviewRepo:  reviewRepo,
		AmenityRepo: amenityRepo,
		LinkRepo:    linkRepo,
		Logger:      logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	// Mount the production route table, not a hand-picked subset.
	router.NewRouter(router.RouterParams{
		UserHandler:    handler.NewUserHandler(userUC, logger),
		CountryHandler: handler.NewCountryHandler(countryUC, logger),
		CityHandler:    handler.NewCityHandler(cityUC, logger),
		AmenityHandler: handler.NewAmenityHandler(amenityUC, logger),
		ReviewHandler:  handler.NewReviewHandler(reviewUC, logger),
		PlaceHandler:   handler.NewPlaceHandler(placeUC, logger),
	}).RegisterRoutes(e)

	return &testServer{e: e}
}

func (s *testServer) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return rec, env
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func (env envelope) dataMap(t *testing.T) map[string]any {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &m))

	return m
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer()

	rec, env := s.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestCountry_CreateGetUpdate(t *testing.T) {
	s := newTestServer()

	rec, env := s.do(t, http.MethodPost, "/api/v1/countries", `{"name":"France","code":"FR"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	created := env.dataMap(t)
	assert.Equal(t, "France", created["name"])
	assert.Equal(t, "FR", created["code"])
	assert.NotEmpty(t, created["id"])
	assert.NotEmpty(t, created["created_at"])

	rec, env = s.do(t, http.MethodGet, "/api/v1/countries/FR", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created["id"], env.dataMap(t)["id"])

	rec, env = s.do(t, http.MethodPut, "/api/v1/countries/FR", `{"name":"Francia"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := env.dataMap(t)
	assert.Equal(t, "Francia", updated["name"])
	assert.Equal(t, "FR", updated["code"])
	assert.Equal(t, created["id"], updated["id"])
}

func TestCountry_GetUnknownCode(t *testing.T) {
	s := newTestServer()

	rec, env := s.do(t, http.MethodGet, "/api/v1/countries/ZZ", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "COUNTRY_NOT_FOUND", env.Error.Code)
}

func TestCountry_AmbiguousCode(t *testing.T) {
	s := newTestServer()
	s.do(t, http.MethodPost, "/api/v1/countries", `{"name":"France","code":"FR"}`)
	s.do(t, http.MethodPost, "/api/v1/countries", `{"name":"Francia","code":"FR"}`)

	rec, env := s.do(t, http.MethodGet, "/api/v1/countries/FR", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "AMBIGUOUS_COUNTRY_CODE", env.Error.Code)
}

func TestUser_MalformedBody(t *testing.T) {
	s := newTestServer()

	rec, env := s.do(t, http.MethodPost, "/api/v1/users", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "MALFORMED_BODY", env.Error.Code)
}

func TestUser_MissingRequiredField(t *testing.T) {
	s := newTestServer()

	rec, env := s.do(t, http.MethodPost, "/api/v1/users", `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "MISSING_FIELD", env.Error.Code)
	assert.Contains(t, env.Error.Details, "password")
}

func TestUser_MissingFirstName(t *testing.T) {
	s := newTestServer()

	rec, env := s.do(t, http.MethodPost, "/api/v1/users", `{"last_name":"Lovelace","email":"ada@example.com","password":"s3cret"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "MISSING_FIELD", env.Error.Code)
	assert.Contains(t, env.Error.Details, "first_name")

	// Nothing may be persisted from a rejected body.
	rec, env = s.do(t, http.MethodGet, "/api/v1/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var users []any
	require.NoError(t, json.Unmarshal(env.Data, &users))
	assert.Empty(t, users)
}

func TestUser_UnknownFieldsIgnored(t *testing.T) {
	s := newTestServer()

	rec, env := s.do(t, http.MethodPost, "/api/v1/users",
		`{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	created := env.dataMap(t)

	// Email is not in the update allow-list and the id is never mutable.
	rec, env = s.do(t, http.MethodPut, "/api/v1/users/"+created["id"].(string),
		`{"first_name":"Augusta","email":"other@example.com","id":"11111111-1111-1111-1111-111111111111"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := env.dataMap(t)
	assert.Equal(t, "Augusta", updated["first_name"])
	assert.Equal(t, "ada@example.com", updated["email"])
	assert.Equal(t, created["id"], updated["id"])
}

func TestUser_MalformedIDIsNotFound(t *testing.T) {
	s := newTestServer()

	rec, env := s.do(t, http.MethodGet, "/api/v1/users/not-a-uuid", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "USER_NOT_FOUND", env.Error.Code)
}

func TestUser_DeleteFlow(t *testing.T) {
	s := newTestServer()

	_, env := s.do(t, http.MethodPost, "/api/v1/users",
		`{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"s3cret"}`)
	id := env.dataMap(t)["id"].(string)

	rec, _ := s.do(t, http.MethodDelete, "/api/v1/users/"+id, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/users/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlace_CreateUnknownCityRejected(t *testing.T) {
	s := newTestServer()

	_, env := s.do(t, http.MethodPost, "/api/v1/users",
		`{"first_name":"Ada","last_name":"Lovelace","email":"host@example.com","password":"s3cret"}`)
	hostID := env.dataMap(t)["id"].(string)

	rec, env := s.do(t, http.MethodPost, "/api/v1/places", `{
		"host_user_id":"`+hostID+`",
		"city_id":"22222222-2222-2222-2222-222222222222",
		"name":"Sea View Loft",
		"description":"A loft with a view",
		"address":"1 Harbour Road",
		"latitude":22.28,
		"longitude":114.16,
		"number_of_rooms":2,
		"bathrooms":1,
		"price_per_night":120,
		"max_guests":4
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "city_id")

	rec, env = s.do(t, http.MethodGet, "/api/v1/places", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var places []any
	require.NoError(t, json.Unmarshal(env.Data, &places))
	assert.Empty(t, places)
}

func TestPlace_HostViewOmitsPassword(t *testing.T) {
	s := newTestServer()

	_, env := s.do(t, http.MethodPost, "/api/v1/users",
		`{"first_name":"Ada","last_name":"Lovelace","email":"host@example.com","password":"s3cret"}`)
	hostID := env.dataMap(t)["id"].(string)

	_, env = s.do(t, http.MethodPost, "/api/v1/countries", `{"name":"France","code":"FR"}`)
	countryID := env.dataMap(t)["id"].(string)

	_, env = s.do(t, http.MethodPost, "/api/v1/cities", `{"name":"Paris","country_id":"`+countryID+`"}`)
	cityID := env.dataMap(t)["id"].(string)

	_, env = s.do(t, http.MethodPost, "/api/v1/places", `{
		"host_user_id":"`+hostID+`",
		"city_id":"`+cityID+`",
		"name":"Sea View Loft",
		"description":"A loft with a view",
		"address":"1 Harbour Road",
		"latitude":22.28,
		"longitude":114.16,
		"number_of_rooms":2,
		"bathrooms":1,
		"price_per_night":120,
		"max_guests":4
	}`)
	placeID := env.dataMap(t)["id"].(string)

	rec, env := s.do(t, http.MethodGet, "/api/v1/places/"+placeID+"/user", "")
	require.Equal(t, http.StatusOK, rec.Code)
	host := env.dataMap(t)
	assert.Equal(t, hostID, host["id"])
	assert.NotContains(t, host, "password")
}

func TestPlace_AttachAmenityAndListNames(t *testing.T) {
	s := newTestServer()

	_, env := s.do(t, http.MethodPost, "/api/v1/users",
		`{"first_name":"Ada","last_name":"Lovelace","email":"host@example.com","password":"s3cret"}`)
	hostID := env.dataMap(t)["id"].(string)
	_, env = s.do(t, http.MethodPost, "/api/v1/countries", `{"name":"France","code":"FR"}`)
	countryID := env.dataMap(t)["id"].(string)
	_, env = s.do(t, http.MethodPost, "/api/v1/cities", `{"name":"Paris","country_id":"`+countryID+`"}`)
	cityID := env.dataMap(t)["id"].(string)
	_, env = s.do(t, http.MethodPost, "/api/v1/places", `{
		"host_user_id":"`+hostID+`",
		"city_id":"`+cityID+`",
		"name":"Sea View Loft",
		"description":"A loft with a view",
		"address":"1 Harbour Road",
		"latitude":22.28,
		"longitude":114.16,
		"number_of_rooms":2,
		"bathrooms":1,
		"price_per_night":120,
		"max_guests":4
	}`)
	placeID := env.dataMap(t)["id"].(string)
	_, env = s.do(t, http.MethodPost, "/api/v1/amenities", `{"name":"Wifi"}`)
	amenityID := env.dataMap(t)["id"].(string)

	rec, _ := s.do(t, http.MethodPost, "/api/v1/places/"+placeID+"/amenities/"+amenityID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = s.do(t, http.MethodGet, "/api/v1/places/"+placeID+"/amenities", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var names []string
	require.NoError(t, json.Unmarshal(env.Data, &names))
	assert.Equal(t, []string{"Wifi"}, names)
}

func TestReview_RatingValidatedAtBoundary(t *testing.T) {
	s := newTestServer()

	_, env := s.do(t, http.MethodPost, "/api/v1/users",
		`{"first_name":"Ada","last_name":"Lovelace","email":"guest@example.com","password":"s3cret"}`)
	userID := env.dataMap(t)["id"].(string)

	rec, env := s.do(t, http.MethodPost, "/api/v1/reviews",
		`{"feedback":"Nice","commentor_user_id":"`+userID+`","place_id":"33333333-3333-3333-3333-333333333333","rating":6}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "rating")
}
