// Package handler contains the HTTP handlers for the application.
// Each resource gets explicit response structures generated from the
// entity; entities themselves never leak into payloads.
package handler

import (
	"time"

	"homestay/internal/domain/entity"
)

// timeLayout is the human-readable date-time format used for all
// serialized timestamps.
const timeLayout = "2006-01-02 15:04:05"

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

type userResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Password:  user.Password,
		CreatedAt: formatTime(user.CreatedAt),
		UpdatedAt: formatTime(user.UpdatedAt),
	}
}

func toUserResponses(users []*entity.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return out
}

// hostResponse is the user view embedded under a place. It carries no
// password digest.
type hostResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toHostResponse(user *entity.User) hostResponse {
	return hostResponse{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: formatTime(user.CreatedAt),
		UpdatedAt: formatTime(user.UpdatedAt),
	}
}

type countryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toCountryResponse(country *entity.Country) countryResponse {
	return countryResponse{
		ID:        country.ID.String(),
		Name:      country.Name,
		Code:      country.Code,
		CreatedAt: formatTime(country.CreatedAt),
		UpdatedAt: formatTime(country.UpdatedAt),
	}
}

func toCountryResponses(countries []*entity.Country) []countryResponse {
	out := make([]countryResponse, 0, len(countries))
	for _, country := range countries {
		out = append(out, toCountryResponse(country))
	}

	return out
}

type cityResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CountryID string `json:"country_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toCityResponse(city *entity.City) cityResponse {
	return cityResponse{
		ID:        city.ID.String(),
		Name:      city.Name,
		CountryID: city.CountryID.String(),
		CreatedAt: formatTime(city.CreatedAt),
		UpdatedAt: formatTime(city.UpdatedAt),
	}
}

func toCityResponses(cities []*entity.City) []cityResponse {
	out := make([]cityResponse, 0, len(cities))
	for _, city := range cities {
		out = append(out, toCityResponse(city))
	}

	return out
}

type amenityResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toAmenityResponse(amenity *entity.Amenity) amenityResponse {
	return amenityResponse{
		ID:        amenity.ID.String(),
		Name:      amenity.Name,
		CreatedAt: formatTime(amenity.CreatedAt),
		UpdatedAt: formatTime(amenity.UpdatedAt),
	}
}

func toAmenityResponses(amenities []*entity.Amenity) []amenityResponse {
	out := make([]amenityResponse, 0, len(amenities))
	for _, amenity := range amenities {
		out = append(out, toAmenityResponse(amenity))
	}

	return out
}

type reviewResponse struct {
	ID              string `json:"id"`
	Feedback        string `json:"feedback"`
	CommentorUserID string `json:"commentor_user_id"`
	PlaceID         string `json:"place_id"`
	Rating          int    `json:"rating"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

func toReviewResponse(review *entity.Review) reviewResponse {
	return reviewResponse{
		ID:              review.ID.String(),
		Feedback:        review.Feedback,
		CommentorUserID: review.CommentorUserID.String(),
		PlaceID:         review.PlaceID.String(),
		Rating:          review.Rating,
		CreatedAt:       formatTime(review.CreatedAt),
		UpdatedAt:       formatTime(review.UpdatedAt),
	}
}

func toReviewResponses(reviews []*entity.Review) []reviewResponse {
	out := make([]reviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, toReviewResponse(review))
	}

	return out
}

type placeResponse struct {
	ID            string  `json:"id"`
	HostUserID    string  `json:"host_user_id"`
	CityID        string  `json:"city_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Address       string  `json:"address"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	NumberOfRooms int     `json:"number_of_rooms"`
	Bathrooms     int     `json:"bathrooms"`
	PricePerNight float64 `json:"price_per_night"`
	MaxGuests     int     `json:"max_guests"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func toPlaceResponse(place *entity.Place) placeResponse {
	return placeResponse{
		ID:            place.ID.String(),
		HostUserID:    place.HostUserID.String(),
		CityID:        place.CityID.String(),
		Name:          place.Name,
		Description:   place.Description,
		Address:       place.Address,
		Latitude:      place.Latitude,
		Longitude:     place.Longitude,
		NumberOfRooms: place.NumberOfRooms,
		Bathrooms:     place.Bathrooms,
		PricePerNight: place.PricePerNight,
		MaxGuests:     place.MaxGuests,
		CreatedAt:     formatTime(place.CreatedAt),
		UpdatedAt:     formatTime(place.UpdatedAt),
	}
}

func toPlaceResponses(places []*entity.Place) []placeResponse {
	out := make([]placeResponse, 0, len(places))
	for _, place := range places {
		out = append(out, toPlaceResponse(place))
	}

	return out
}
