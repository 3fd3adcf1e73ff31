// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer. Every store is volatile and process-local,
// but callers only ever see these contracts.
package repository

import (
	"context"
	"errors"

	"homestay/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindAll returns every stored user. Order is not significant.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Insert persists a new user entity to the storage.
	Insert(ctx context.Context, user *entity.User) error

	// Update replaces an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user with the given ID. Rows in other
	// repositories that reference the user are left untouched.
	Delete(ctx context.Context, id uuid.UUID) error
}
