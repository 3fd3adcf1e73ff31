package entity

import (
	"time"

	"github.com/google/uuid"
)

// Country is a top-level geographic entity. Cities reference it by ID,
// while the public API addresses it by its short code (e.g. "FR").
type Country struct {
	ID        uuid.UUID // The unique identifier for the country.
	Name      string    // The country's display name, must be non-empty.
	Code      string    // Short lookup code. Uniqueness is not enforced at creation; ambiguous lookups fail instead.
	CreatedAt time.Time
	UpdatedAt time.Time
}
