package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fixmylab/internal/domain/user"
	"fixmylab/internal/infrastructure/persistence/models"
)

func setupUserTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.UserModel{}))
	return db
}

func TestUserRepository_Save(t *testing.T) {
	t.Run("assigns id on insert", func(t *testing.T) {
		repo := NewUserRepository(setupUserTestDB(t))

		u, err := user.NewUser("anna@shop.example", "hash-1", user.RoleStaff)
		require.NoError(t, err)

		require.NoError(t, repo.Save(context.Background(), u))
		assert.NotZero(t, u.ID())
	})

	t.Run("updates existing user in place", func(t *testing.T) {
		db := setupUserTestDB(t)
		repo := NewUserRepository(db)
		ctx := context.Background()

		u, err := user.NewUser("anna@shop.example", "hash-1", user.RoleStaff)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, u))

		updated := user.ReconstructUser(u.ID(), u.Email(), "hash-2", user.RoleAdmin, u.CreatedAt(), u.UpdatedAt())
		require.NoError(t, repo.Save(ctx, updated))

		found, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "hash-2", found.PasswordHash())
		assert.Equal(t, user.RoleAdmin, found.Role())

		var count int64
		require.NoError(t, db.Model(&models.UserModel{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := NewUserRepository(setupUserTestDB(t))
		ctx := context.Background()

		first, err := user.NewUser("anna@shop.example", "hash-1", user.RoleStaff)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, first))

		second, err := user.NewUser("anna@shop.example", "hash-2", user.RoleStaff)
		require.NoError(t, err)
		assert.Error(t, repo.Save(ctx, second))
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	repo := NewUserRepository(setupUserTestDB(t))
	ctx := context.Background()

	u, err := user.NewUser("marco@shop.example", "hash-1", user.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, u))

	t.Run("finds stored user", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "marco@shop.example")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, u.ID(), found.ID())
		assert.Equal(t, "hash-1", found.PasswordHash())
		assert.Equal(t, user.RoleAdmin, found.Role())
	})

	t.Run("returns nil for unknown email", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "nobody@shop.example")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	repo := NewUserRepository(setupUserTestDB(t))
	ctx := context.Background()

	u, err := user.NewUser("marco@shop.example", "hash-1", user.RoleStaff)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, u))

	found, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "marco@shop.example", found.Email())

	absent, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, absent)
}
