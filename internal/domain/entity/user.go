// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account in the marketplace. A user can host places
// and leave reviews on places hosted by others.
type User struct {
	ID        uuid.UUID // The unique identifier for the user, generated once at creation.
	FirstName string    // The user's given name.
	LastName  string    // The user's family name.
	Email     string    // The user's contact email, required at creation.
	Password  string    // The bcrypt hash of the user's password.
	CreatedAt time.Time // Timestamp of when this account was created. Immutable.
	UpdatedAt time.Time // Timestamp of the last accepted modification.
}
