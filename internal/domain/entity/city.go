package entity

import (
	"time"

	"github.com/google/uuid"
)

// City belongs to exactly one country. The CountryID field is a weak
// reference: deleting the country does not cascade to its cities.
type City struct {
	ID        uuid.UUID
	Name      string    // Letters and spaces only.
	CountryID uuid.UUID // Foreign key to the owning Country.
	CreatedAt time.Time
	UpdatedAt time.Time
}
