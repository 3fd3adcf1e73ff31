package impl

import (
	"context"
	"testing"

	domainerrors "homestay/internal/domain/errors"
	"homestay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceService_Create(t *testing.T) {
	f := newFixture()
	host := f.mustCreateUser(t, "host@example.com")
	france := f.mustCreateCountry(t, "France", "FR")
	paris := f.mustCreateCity(t, "Paris", france)

	place := f.mustCreatePlace(t, host, paris)

	assert.Equal(t, host.ID, place.HostUserID)
	assert.Equal(t, paris.ID, place.CityID)
	assert.Equal(t, place.CreatedAt, place.UpdatedAt)
}

func TestPlaceService_Create_UnknownCity(t *testing.T) {
	f := newFixture()
	host := f.mustCreateUser(t, "host@example.com")
	france := f.mustCreateCountry(t, "France", "FR")
	paris := f.mustCreateCity(t, "Paris", france)

	input := placeInput(host, paris)
	input.CityID = uuid.New().String()

	_, err := f.places.Create(context.Background(), input)

	var valErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "city_id", valErr.Field)

	places, listErr := f.places.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, places)
}

func TestPlaceService_Create_LatitudeOutOfRange(t *testing.T) {
	f := newFixture()
	host := f.mustCreateUser(t, "host@example.com")
	france := f.mustCreateCountry(t, "France", "FR")
	paris := f.mustCreateCity(t, "Paris", france)

	input := placeInput(host, paris)
	input.Latitude = floatPtr(91)

	_, err := f.places.Create(context.Background(), input)

	var valErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "latitude", valErr.Field)
}

func TestPlaceService_Update_RejectedUpdateLeavesPlaceUntouched(t *testing.T) {
	f := newFixture()
	host := f.mustCreateUser(t, "host@example.com")
	france := f.mustCreateCountry(t, "France", "FR")
	paris := f.mustCreateCity(t, "Paris", france)
	place := f.mustCreatePlace(t, host, paris)

	_, err := f.places.Update(context.Background(), place.ID, &usecase.UpdatePlaceInput{
		Name:          strPtr("Renamed Loft"),
		PricePerNight: floatPtr(-1),
	})
	require.Error(t, err)

	kept, getErr := f.places.Get(context.Background(), place.ID)
	require.NoError(t, getErr)
	assert.Equal(t, "Sea View Loft", kept.Name)
	assert.Equal(t, 120.0, kept.PricePerNight)
}

func TestPlaceService_Update_Partial(t *testing.T) {
	f := newFixture()
	host := f.mustCreateUser(t, "host@example.com")
	france := f.mustCreateCountry(t, "France", "FR")
	paris := f.mustCreateCity(t, "Paris", france)
	place := f.mustCreatePlace(t, host, paris)

	updated, err := f.places.Update(context.Background(), place.ID, &usecase.UpdatePlaceInput{
		MaxGuests: intPtr(6),
	})
	require.NoError(t, err)

	assert.Equal(t, 6, updated.MaxGuests)
	assert.Equal(t, place.Name, updated.Name)
	assert.Equal(t, place.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(place.UpdatedAt))
}

func TestPlaceService_DerivedViews(t *testing.T) {
	f := newFixture()
	host := f.mustCreateUser(t, "host@example.com")
	guest := f.mustCreateUser(t, "guest@example.com")
	france := f.mustCreateCountry(t, "France", "FR")
	paris := f.mustCreateCity(t, "Paris", france)
	place := f.mustCreatePlace(t, host, paris)
	review := f.mustCreateReview(t, guest, place)

	gotHost, err := f.places.HostOfPlace(context.Background(), place.ID)
	require.NoError(t, err)
	assert.Equal(t, host.ID, gotHost.ID)

	gotCity, err := f.places.CityOfPlace(context.Background(), place.ID)
	require.NoError(t, err)
	assert.Equal(t, paris.ID, gotCity.ID)

	reviews, err := f.places.ReviewsOfPlace(context.Background(), place.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, review.ID, reviews[0].ID)
}

func TestPlaceService_AttachAndDetachAmenity(t *testing.T) {
	f := newFixture()
	host := f.mustCreateUser(t, "host@example.com")
	france := f.mustCreateCountry(t, "France", "FR")
	paris := f.mustCreateCity(t, "Paris", france)
	place := f.mustCreatePlace(t, host, paris)
	wifi := f.mustCreateAmenity(t, "Wifi")
	pool := f.mustCreateAmenity(t, "Pool")

	require.NoError(t, f.places.AttachAmenity(context.Background(), place.ID, wifi.ID))
	require.NoError(t, f.places.AttachAmenity(context.Background(), place.ID, pool.ID))
	// Relinking the same pair is a no-op, not an error.
	require.NoError(t, f.places.AttachAmenity(context.Background(), place.ID, wifi.ID))

	names, err := f.places.AmenityNamesOfPlace(context.Background(), place.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Wifi", "Pool"}, names)

	require.NoError(t, f.places.DetachAmenity(context.Background(), place.ID, wifi.ID))

	names, err = f.places.AmenityNamesOfPlace(context.Background(), place.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pool"}, names)
}

func TestPlaceService_AttachAmenity_UnknownAmenity(t *testing.T) {
	f := newFixture()
	host := f.mustCreateUser(t, "host@example.com")
	france := f.mustCreateCountry(t, "France", "FR")
	paris := f.mustCreateCity(t, "Paris", france)
	place := f.mustCreatePlace(t, host, paris)

	err := f.places.AttachAmenity(context.Background(), place.ID, uuid.New())

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "AMENITY_NOT_FOUND", appErr.ErrorCode())
}
