// Package validate holds the pure field rules shared by every entity
// constructor and update path. Each function checks one field against
// its domain rule and returns a ValidationError naming the field and
// the rejected value.
package validate

import (
	"regexp"
	"strings"

	domainerrors "homestay/internal/domain/errors"
)

var (
	lettersOnly      = regexp.MustCompile(`^[a-zA-Z]+$`)
	lettersAndSpaces = regexp.MustCompile(`^[a-zA-Z ]+$`)
)

// LettersName checks a name that may only contain letters (amenity names).
func LettersName(field, value string) error {
	if strings.TrimSpace(value) == "" || !lettersOnly.MatchString(value) {
		return domainerrors.NewValidationError(field, value, "must contain letters only")
	}

	return nil
}

// SpacedName checks a name that may contain letters and spaces
// (city and place names).
func SpacedName(field, value string) error {
	if strings.TrimSpace(value) == "" || !lettersAndSpaces.MatchString(value) {
		return domainerrors.NewValidationError(field, value, "must contain letters and spaces only")
	}

	return nil
}

// NonEmpty checks that a free-form string has content after trimming.
func NonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domainerrors.NewValidationError(field, value, "must not be empty")
	}

	return nil
}

// Rating checks an integer rating against the inclusive [0, 5] range.
func Rating(field string, value int) error {
	if value < 0 || value > 5 {
		return domainerrors.NewValidationError(field, value, "must be between 0 and 5")
	}

	return nil
}

// Latitude checks a latitude against its natural [-90, 90] domain.
func Latitude(field string, value float64) error {
	if value < -90 || value > 90 {
		return domainerrors.NewValidationError(field, value, "must be between -90 and 90")
	}

	return nil
}

// Longitude checks a longitude against its natural [-180, 180] domain.
func Longitude(field string, value float64) error {
	if value < -180 || value > 180 {
		return domainerrors.NewValidationError(field, value, "must be between -180 and 180")
	}

	return nil
}

// Count checks a room/bathroom/guest count for non-negativity.
func Count(field string, value int) error {
	if value < 0 {
		return domainerrors.NewValidationError(field, value, "must not be negative")
	}

	return nil
}

// Price checks a price for non-negativity.
func Price(field string, value float64) error {
	if value < 0 {
		return domainerrors.NewValidationError(field, value, "must not be negative")
	}

	return nil
}
