package entity

import (
	"time"

	"github.com/google/uuid"
)

// Amenity is a feature that places can offer, linked to places through
// the PlaceAmenity join collection.
type Amenity struct {
	ID        uuid.UUID
	Name      string // Letters only, non-empty.
	CreatedAt time.Time
	UpdatedAt time.Time
}
