// Package impl contains the implementation of the application's business logic.
package impl

import (
	"github.com/google/uuid"

	domainerrors "homestay/internal/domain/errors"
)

// parseID parses a foreign-key value carried as a string. A value that
// cannot name any entity is reported as a validation failure on the
// field rather than as a lookup miss.
func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(field, value, "must be a valid id")
	}

	return id, nil
}
