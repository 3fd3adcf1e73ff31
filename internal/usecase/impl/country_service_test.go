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

func TestCountryService_CreateAndGetByCode(t *testing.T) {
	f := newFixture()

	created := f.mustCreateCountry(t, "France", "FR")

	found, err := f.countries.GetByCode(context.Background(), "FR")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "France", found.Name)
}

func TestCountryService_Create_EmptyName(t *testing.T) {
	f := newFixture()

	_, err := f.countries.Create(context.Background(), &usecase.CreateCountryInput{Name: "", Code: "FR"})

	var valErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "name", valErr.Field)
}

func TestCountryService_GetByCode_Ambiguous(t *testing.T) {
	f := newFixture()
	f.mustCreateCountry(t, "France", "FR")
	f.mustCreateCountry(t, "Francia", "FR")

	_, err := f.countries.GetByCode(context.Background(), "FR")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "AMBIGUOUS_COUNTRY_CODE", appErr.ErrorCode())
}

func TestCountryService_UpdateByCode_KeepsCodeAndID(t *testing.T) {
	f := newFixture()
	created := f.mustCreateCountry(t, "France", "FR")

	updated, err := f.countries.UpdateByCode(context.Background(), "FR", &usecase.UpdateCountryInput{
		Name: strPtr("Francia"),
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "FR", updated.Code)
	assert.Equal(t, "Francia", updated.Name)
}

func TestCountryService_CitiesOfCountry(t *testing.T) {
	f := newFixture()
	france := f.mustCreateCountry(t, "France", "FR")
	japan := f.mustCreateCountry(t, "Japan", "JP")
	paris := f.mustCreateCity(t, "Paris", france)
	f.mustCreateCity(t, "Tokyo", japan)

	cities, err := f.countries.CitiesOfCountry(context.Background(), "FR")
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, paris.ID, cities[0].ID)
}
