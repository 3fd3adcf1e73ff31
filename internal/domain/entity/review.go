package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's rated feedback on a place.
type Review struct {
	ID              uuid.UUID
	Feedback        string
	CommentorUserID uuid.UUID // Foreign key to the reviewing User.
	PlaceID         uuid.UUID // Foreign key to the reviewed Place.
	Rating          int       // Integer in [0, 5].
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
