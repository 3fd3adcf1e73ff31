package entity

import (
	"time"

	"github.com/google/uuid"
)

// Place is a lodging listing hosted by a user in a city. Both FK fields
// are weak references resolved through their owning repositories.
type Place struct {
	ID            uuid.UUID
	HostUserID    uuid.UUID // Foreign key to the hosting User.
	CityID        uuid.UUID // Foreign key to the City the place is in.
	Name          string    // Letters and spaces only.
	Description   string
	Address       string
	Latitude      float64
	Longitude     float64
	NumberOfRooms int     // Non-negative.
	Bathrooms     int     // Non-negative.
	PricePerNight float64 // Non-negative.
	MaxGuests     int     // Non-negative.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
