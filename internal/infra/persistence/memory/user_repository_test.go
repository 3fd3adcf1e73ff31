package memory

import (
	"context"
	"testing"
	"time"

	"homestay/internal/domain/entity"
	"homestay/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(email string) *entity.User {
	now := time.Now()

	return &entity.User{
		ID:        uuid.New(),
		FirstName: "Bruce",
		LastName:  "Wayne",
		Email:     email,
		Password:  "hashed",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUserRepository_CRUD(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := newUser("bruce@wayne.example")
	require.NoError(t, repo.Insert(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)

	found.FirstName = "Batman"
	require.NoError(t, repo.Update(ctx, found))

	updated, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Batman", updated.FirstName)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, user.ID))

	_, err = repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DeleteUnknown(t *testing.T) {
	repo := NewUserRepository()

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
