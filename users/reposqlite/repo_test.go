package userreposqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/jrsteele09/go-auth-api/internal/database"
	"github.com/jrsteele09/go-auth-api/users"
	userreposqlite "github.com/jrsteele09/go-auth-api/users/reposqlite"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *userreposqlite.SQLiteUserRepo {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return userreposqlite.NewSQLiteUserRepo(db)
}

func testUser() *users.User {
	return &users.User{
		ID:           "user-1",
		Name:         "John Doe",
		Email:        "john.doe@example.com",
		PasswordHash: "$2a$10$fakehash",
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser()))

	byEmail, err := repo.GetByEmail(ctx, "john.doe@example.com")
	require.NoError(t, err)
	require.Equal(t, "user-1", byEmail.ID)
	require.Equal(t, "John Doe", byEmail.Name)
	require.Equal(t, "$2a$10$fakehash", byEmail.PasswordHash)

	byID, err := repo.GetByID(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, byEmail.Email, byID.Email)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser()))

	duplicate := testUser()
	duplicate.ID = "user-2"
	err := repo.Create(ctx, duplicate)
	require.ErrorIs(t, err, users.ErrDuplicateEmail)
}

func TestGet_NotFound(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "missing@example.com")
	require.ErrorIs(t, err, users.ErrNotFound)

	_, err = repo.GetByID(ctx, "missing")
	require.ErrorIs(t, err, users.ErrNotFound)
}

func TestGetByEmail_ExactMatch(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser()))

	_, err := repo.GetByEmail(ctx, "John.Doe@example.com")
	require.ErrorIs(t, err, users.ErrNotFound, "email lookup is an exact match")
}
