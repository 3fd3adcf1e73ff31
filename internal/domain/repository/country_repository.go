package repository

import (
	"context"
	"errors"

	"homestay/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrCountryNotFound is returned when no country matches the given ID or code.
	ErrCountryNotFound = errors.New("country not found")

	// ErrAmbiguousCountryCode is returned by FindByCode when more than one
	// country carries the requested code. Codes are not unique at creation,
	// so lookup has to refuse the ambiguity instead of picking a winner.
	ErrAmbiguousCountryCode = errors.New("ambiguous country code")
)

// CountryRepository defines the standard operations for country persistence.
type CountryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Country, error)

	// FindByCode resolves a country by its short code with a linear scan.
	// Zero matches yield ErrCountryNotFound, multiple matches yield
	// ErrAmbiguousCountryCode.
	FindByCode(ctx context.Context, code string) (*entity.Country, error)

	FindAll(ctx context.Context) ([]*entity.Country, error)

	Insert(ctx context.Context, country *entity.Country) error

	Update(ctx context.Context, country *entity.Country) error
}
