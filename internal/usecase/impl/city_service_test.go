package impl

import (
	"context"
	"testing"

	domainerrors "homestay/internal/domain/errors"
	"homestay/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCityService_Create_UnknownCountry(t *testing.T) {
	f := newFixture()

	_, err := f.cities.Create(context.Background(), &usecase.CreateCityInput{
		Name:      "Paris",
		CountryID: "00000000-0000-0000-0000-000000000001",
	})

	var valErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "country_id", valErr.Field)

	cities, listErr := f.cities.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, cities)
}

func TestCityService_Create_MalformedCountryID(t *testing.T) {
	f := newFixture()

	_, err := f.cities.Create(context.Background(), &usecase.CreateCityInput{
		Name:      "Paris",
		CountryID: "not-an-id",
	})

	var valErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "country_id", valErr.Field)
}

func TestCityService_CountryOfCity(t *testing.T) {
	f := newFixture()
	france := f.mustCreateCountry(t, "France", "FR")
	paris := f.mustCreateCity(t, "Paris", france)

	country, err := f.cities.CountryOfCity(context.Background(), paris.ID)
	require.NoError(t, err)
	assert.Equal(t, france.ID, country.ID)
}

func TestCityService_Update_RejectsBadName(t *testing.T) {
	f := newFixture()
	france := f.mustCreateCountry(t, "France", "FR")
	paris := f.mustCreateCity(t, "Paris", france)

	_, err := f.cities.Update(context.Background(), paris.ID, &usecase.UpdateCityInput{
		Name: strPtr("P4ris!"),
	})
	require.Error(t, err)

	kept, getErr := f.cities.Get(context.Background(), paris.ID)
	require.NoError(t, getErr)
	assert.Equal(t, "Paris", kept.Name)
}
