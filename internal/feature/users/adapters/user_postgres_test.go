package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"blog_backend/internal/feature/users/domain/entity"
	"blog_backend/internal/feature/users/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError is enabled to match the production gorm configuration.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func newTestUser(email string) *entity.User {
	return &entity.User{
		FirstName: "Taro",
		LastName:  "Yamada",
		Email:     email,
		Password:  "hashed_password",
	}
}

func TestNewUserPostgres(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserPostgres(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserPostgres_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		user := newTestUser("test@example.com")

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, user.UpdatedAt.IsZero(), "UpdatedAt is not set")
	})

	t.Run("duplicate email returns ErrEmailAlreadyExists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		err := repo.Create(context.Background(), newTestUser("duplicate@example.com"))
		require.NoError(t, err, "failed to create first user")

		err = repo.Create(context.Background(), newTestUser("duplicate@example.com"))

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists, "should return ErrEmailAlreadyExists")
	})

	t.Run("missing required field error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		user := newTestUser("missing@example.com")
		user.FirstName = ""

		err := repo.Create(context.Background(), user)

		assert.Error(t, err, "should return error for missing required field")
	})

	t.Run("nil user error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		err := repo.Create(context.Background(), nil)

		assert.Error(t, err, "should return error for nil user")
	})
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	t.Run("find user by email successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		expected := newTestUser("find@example.com")
		err := repo.Create(context.Background(), expected)
		require.NoError(t, err, "failed to create test data")

		found, err := repo.FindByEmail(context.Background(), "find@example.com")

		assert.NoError(t, err, "failed to find user")
		assert.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
		assert.Equal(t, expected.Password, found.Password, "password does not match")
	})

	t.Run("email not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		found, err := repo.FindByEmail(context.Background(), "notfound@example.com")

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserPostgres_FindByID(t *testing.T) {
	t.Run("find user by ID successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		expected := newTestUser("findbyid@example.com")
		err := repo.Create(context.Background(), expected)
		require.NoError(t, err, "failed to create test data")

		found, err := repo.FindByID(context.Background(), expected.ID)

		assert.NoError(t, err, "failed to find user")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
	})

	t.Run("ID not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		found, err := repo.FindByID(context.Background(), 999)

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserPostgres_FindAll(t *testing.T) {
	t.Run("returns every user in ID order", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		emails := []string{"u1@example.com", "u2@example.com", "u3@example.com"}
		for _, e := range emails {
			err := repo.Create(context.Background(), newTestUser(e))
			require.NoError(t, err, "failed to create test data")
		}

		users, err := repo.FindAll(context.Background())

		assert.NoError(t, err, "failed to list users")
		require.Len(t, users, 3, "unexpected user count")
		for i, e := range emails {
			assert.Equal(t, e, users[i].Email, "unexpected order")
		}
	})

	t.Run("empty table returns empty slice", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		users, err := repo.FindAll(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, users)
	})
}

func TestUserPostgres_Update(t *testing.T) {
	t.Run("update changes persisted fields", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		user := newTestUser("update@example.com")
		err := repo.Create(context.Background(), user)
		require.NoError(t, err, "failed to create test data")

		user.FirstName = "Hanako"
		err = repo.Update(context.Background(), user)
		require.NoError(t, err, "failed to update user")

		found, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Hanako", found.FirstName, "first name not updated")
	})

	t.Run("update to an email already in use returns ErrEmailAlreadyExists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		err := repo.Create(context.Background(), newTestUser("taken@example.com"))
		require.NoError(t, err)

		user := newTestUser("mine@example.com")
		err = repo.Create(context.Background(), user)
		require.NoError(t, err)

		user.Email = "taken@example.com"
		err = repo.Update(context.Background(), user)

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists, "should return ErrEmailAlreadyExists")
	})
}

func TestUserPostgres_Delete(t *testing.T) {
	t.Run("delete removes the record", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		user := newTestUser("delete@example.com")
		err := repo.Create(context.Background(), user)
		require.NoError(t, err)

		err = repo.Delete(context.Background(), user.ID)
		assert.NoError(t, err, "failed to delete user")

		_, err = repo.FindByID(context.Background(), user.ID)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "user should be gone")
	})

	t.Run("deleting a missing user returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		err := repo.Delete(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}
