package memory

import (
	"context"
	"time"

	"homestay/internal/domain/entity"
	"homestay/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// seedCountries is the starter country set loaded when seeding is enabled,
// so the API is usable out of the box without a bootstrap client.
var seedCountries = []struct {
	name string
	code string
}{
	{"United States", "US"},
	{"France", "FR"},
	{"Japan", "JP"},
	{"Singapore", "SG"},
	{"Brazil", "BR"},
}

// SeedCountries preloads the country repository with the starter set.
func SeedCountries(ctx context.Context, repo repository.CountryRepository) error {
	now := time.Now()
	for _, c := range seedCountries {
		country := &entity.Country{
			ID:        uuid.New(),
			Name:      c.name,
			Code:      c.code,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.Insert(ctx, country); err != nil {
			return errors.Wrapf(err, "failed to seed country %s", c.code)
		}
	}

	return nil
}
