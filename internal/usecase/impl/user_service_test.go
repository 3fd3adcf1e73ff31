package impl

import (
	"context"
	"testing"

	domainerrors "homestay/internal/domain/errors"
	"homestay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_HashesPassword(t *testing.T) {
	f := newFixture()

	user, err := f.users.Create(context.Background(), &usecase.CreateUserInput{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Password:  "plaintext",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "plaintext", user.Password)
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestUserService_Get_Unknown(t *testing.T) {
	f := newFixture()

	_, err := f.users.Get(context.Background(), uuid.New())
	assert.ErrorContains(t, err, "user not found")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "USER_NOT_FOUND", appErr.ErrorCode())
}

func TestUserService_Update_PartialAndStamps(t *testing.T) {
	f := newFixture()
	user := f.mustCreateUser(t, "ada@example.com")

	updated, err := f.users.Update(context.Background(), user.ID, &usecase.UpdateUserInput{
		FirstName: strPtr("Augusta"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Augusta", updated.FirstName)
	assert.Equal(t, "Lovelace", updated.LastName)
	assert.Equal(t, user.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(user.UpdatedAt))
}

func TestUserService_Delete(t *testing.T) {
	f := newFixture()
	user := f.mustCreateUser(t, "ada@example.com")

	require.NoError(t, f.users.Delete(context.Background(), user.ID))

	_, err := f.users.Get(context.Background(), user.ID)
	assert.Error(t, err)

	err = f.users.Delete(context.Background(), user.ID)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "USER_NOT_FOUND", appErr.ErrorCode())
}
