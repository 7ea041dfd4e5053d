package repository

import (
	"context"
	"testing"

	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("missing user", func(t *testing.T) {
		tdb.ClearCollections(t, "users")

		_, err := repo.FindByEmail(ctx, "nobody@example.com")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("upsert creates then updates the role", func(t *testing.T) {
		tdb.ClearCollections(t, "users")

		require.NoError(t, repo.UpsertRole(ctx, "scout@example.com", models.RoleScout))
		first, err := repo.FindByEmail(ctx, "scout@example.com")
		require.NoError(t, err)
		assert.Equal(t, models.RoleScout, first.Role)
		assert.False(t, first.CreatedAt.IsZero())

		require.NoError(t, repo.UpsertRole(ctx, "scout@example.com", models.RoleAssistant))
		second, err := repo.FindByEmail(ctx, "scout@example.com")
		require.NoError(t, err)
		assert.Equal(t, models.RoleAssistant, second.Role)
		assert.Equal(t, first.CreatedAt, second.CreatedAt)
	})
}
