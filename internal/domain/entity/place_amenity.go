package entity

import "github.com/google/uuid"

// PlaceAmenity is a row in the many-to-many join collection between
// places and amenities. The pair itself is the identity; linking the
// same pair twice is a no-op.
type PlaceAmenity struct {
	PlaceID   uuid.UUID
	AmenityID uuid.UUID
}
