// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
//
// Input DTOs double as request bodies: they carry only the fields a
// client may set, so unknown JSON keys are dropped at the binding
// boundary and can never reach the domain. Foreign keys arrive as
// strings and are parsed inside the services so that a malformed ID
// surfaces as a validation failure on the named field rather than as
// an unreadable body.
package usecase

import (
	"context"

	"homestay/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput defines the data required to create a new user.
// Every field is mandatory at creation.
type CreateUserInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// UpdateUserInput defines the partial body accepted by the user update
// path. Only first and last name are mutable; nil means "leave as is".
type UpdateUserInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	Create(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
