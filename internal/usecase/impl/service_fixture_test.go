package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"homestay/internal/domain/entity"
	"homestay/internal/infra/auth"
	"homestay/internal/infra/persistence/memory"
	"homestay/internal/usecase"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fixture wires every service against fresh in-memory repositories, the
// same way the application container does.
type fixture struct {
	users     usecase.UserUsecase
	countries usecase.CountryUsecase
	cities    usecase.CityUsecase
	amenities usecase.AmenityUsecase
	reviews   usecase.ReviewUsecase
	places    usecase.PlaceUsecase
}

func newFixture() *fixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := memory.NewUserRepository()
	countryRepo := memory.NewCountryRepository()
	cityRepo := memory.NewCityRepository()
	amenityRepo := memory.NewAmenityRepository()
	reviewRepo := memory.NewReviewRepository()
	placeRepo := memory.NewPlaceRepository()
	linkRepo := memory.NewPlaceAmenityRepository()

	return &fixture{
		users: NewUserService(UserServiceParams{
			UserRepo: userRepo,
			Hasher:   auth.NewBcryptHasher(bcrypt.MinCost),
			Logger:   logger,
		}),
		countries: NewCountryService(CountryServiceParams{
			CountryRepo: countryRepo,
			CityRepo:    cityRepo,
			Logger:      logger,
		}),
		cities: NewCityService(CityServiceParams{
			CityRepo:    cityRepo,
			CountryRepo: countryRepo,
			Logger:      logger,
		}),
		amenities: NewAmenityService(AmenityServiceParams{
			AmenityRepo: amenityRepo,
			LinkRepo:    linkRepo,
			Logger:      logger,
		}),
		reviews: NewReviewService(ReviewServiceParams{
			ReviewRepo: reviewRepo,
			UserRepo:   userRepo,
			PlaceRepo:  placeRepo,
			Logger:     logger,
		}),
		places: NewPlaceService(PlaceServiceParams{
			PlaceRepo:   placeRepo,
			UserRepo:    userRepo,
			CityRepo:    cityRepo,
			ReviewRepo:  reviewRepo,
			AmenityRepo: amenityRepo,
			LinkRepo:    linkRepo,
			Logger:      logger,
		}),
	}
}

func strPtr(s string) *string     { return &s }
func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func (f *fixture) mustCreateUser(t *testing.T, email string) *entity.User {
	t.Helper()
	user, err := f.users.Create(context.Background(), &usecase.CreateUserInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		Password:  "s3cret",
	})
	require.NoError(t, err)

	return user
}

func (f *fixture) mustCreateCountry(t *testing.T, name, code string) *entity.Country {
	t.Helper()
	country, err := f.countries.Create(context.Background(), &usecase.CreateCountryInput{
		Name: name,
		Code: code,
	})
	require.NoError(t, err)

	return country
}

func (f *fixture) mustCreateCity(t *testing.T, name string, country *entity.Country) *entity.City {
	t.Helper()
	city, err := f.cities.Create(context.Background(), &usecase.CreateCityInput{
		Name:      name,
		CountryID: country.ID.String(),
	})
	require.NoError(t, err)

	return city
}

func (f *fixture) mustCreateAmenity(t *testing.T, name string) *entity.Amenity {
	t.Helper()
	amenity, err := f.amenities.Create(context.Background(), &usecase.CreateAmenityInput{Name: name})
	require.NoError(t, err)

	return amenity
}

func placeInput(host *entity.User, city *entity.City) *usecase.CreatePlaceInput {
	return &usecase.CreatePlaceInput{
		HostUserID:    host.ID.String(),
		CityID:        city.ID.String(),
		Name:          "Sea View Loft",
		Description:   "A loft with a view",
		Address:       "1 Harbour Road",
		Latitude:      floatPtr(22.28),
		Longitude:     floatPtr(114.16),
		NumberOfRooms: intPtr(2),
		Bathrooms:     intPtr(1),
		PricePerNight: floatPtr(120.0),
		MaxGuests:     intPtr(4),
	}
}

func (f *fixture) mustCreatePlace(t *testing.T, host *entity.User, city *entity.City) *entity.Place {
	t.Helper()
	place, err := f.places.Create(context.Background(), placeInput(host, city))
	require.NoError(t, err)

	return place
}

func (f *fixture) mustCreateReview(t *testing.T, user *entity.User, place *entity.Place) *entity.Review {
	t.Helper()
	review, err := f.reviews.Create(context.Background(), &usecase.CreateReviewInput{
		Feedback:        "Great stay",
		CommentorUserID: user.ID.String(),
		PlaceID:         place.ID.String(),
		Rating:          intPtr(5),
	})
	require.NoError(t, err)

	return review
}
