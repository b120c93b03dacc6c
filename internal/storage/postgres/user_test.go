package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkosyrev/postline/internal/user"
)

func TestUserPostgresStorage_CreateUser(t *testing.T) {
	oldDB := setupTestDB(t)
	defer teardownTestDB(oldDB)

	storage := NewUserPostgresStorage()
	ctx := context.Background()

	created, err := storage.CreateUser(ctx, "Anna", "anna@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Anna", created.Name)
	assert.Equal(t, "anna@example.com", created.Email)
}

func TestUserPostgresStorage_GetUserById(t *testing.T) {
	oldDB := setupTestDB(t)
	defer teardownTestDB(oldDB)

	storage := NewUserPostgresStorage()
	ctx := context.Background()

	created, err := storage.CreateUser(ctx, "Anna", "anna@example.com")
	require.NoError(t, err)

	t.Run("returns the matching user", func(t *testing.T) {
		got, err := storage.GetUserById(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, created.Name, got.Name)
	})

	t.Run("unknown id yields ErrNotFound", func(t *testing.T) {
		_, err := storage.GetUserById("999")
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("non-numeric id yields ErrNotFound", func(t *testing.T) {
		_, err := storage.GetUserById("not-a-number")
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestUserPostgresStorage_GetAllUsers(t *testing.T) {
	oldDB := setupTestDB(t)
	defer teardownTestDB(oldDB)

	storage := NewUserPostgresStorage()
	ctx := context.Background()

	names := []string{"Anna", "Marc", "Lena"}
	for _, name := range names {
		_, err := storage.CreateUser(ctx, name, name+"@example.com")
		require.NoError(t, err)
	}

	users, err := storage.GetAllUsers()
	require.NoError(t, err)
	require.Len(t, users, 3)

	var got []string
	for _, u := range users {
		got = append(got, u.Name)
	}
	assert.Equal(t, names, got)
}
