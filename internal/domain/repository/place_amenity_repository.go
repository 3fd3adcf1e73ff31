package repository

import (
	"context"

	"github.com/google/uuid"
)

// PlaceAmenityRepository manages the many-to-many join collection between
// places and amenities. FK existence checks are the caller's concern;
// the join store only knows about pairs of IDs.
type PlaceAmenityRepository interface {
	// Link records a place/amenity association. Linking an already
	// associated pair is a no-op.
	Link(ctx context.Context, placeID, amenityID uuid.UUID) error

	// Unlink removes a place/amenity association if present.
	Unlink(ctx context.Context, placeID, amenityID uuid.UUID) error

	// AmenityIDsOfPlace returns the amenity IDs linked to the place.
	AmenityIDsOfPlace(ctx context.Context, placeID uuid.UUID) ([]uuid.UUID, error)

	// PlaceIDsOfAmenity returns the place IDs linked to the amenity.
	PlaceIDsOfAmenity(ctx context.Context, amenityID uuid.UUID) ([]uuid.UUID, error)
}
