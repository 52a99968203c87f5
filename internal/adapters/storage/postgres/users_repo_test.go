package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dogs-registry/internal/domain/users"
)

func TestUsersRepo_Create_DuplicateUsername(t *testing.T) {
	mock := newMock(t)
	repo := NewUsersRepo(mock)
	u := users.User{ID: testUserID, Username: "ivan", PasswordHash: "x", CreatedAt: time.Now()}

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(u.ID, u.Username, u.PasswordHash, u.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	assert.ErrorIs(t, repo.Create(context.Background(), u), users.ErrConflict)
}

func TestUsersRepo_GetByUsername(t *testing.T) {
	mock := newMock(t)
	repo := NewUsersRepo(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(`FROM users\s+WHERE username = \$1`).
		WithArgs("ivan").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow(testUserID, "ivan", "hash", now))

	u, err := repo.GetByUsername(context.Background(), "ivan")
	require.NoError(t, err)
	assert.Equal(t, testUserID, u.ID)
	assert.Equal(t, "hash", u.PasswordHash)
}

func TestUsersRepo_GetByID_InvalidID(t *testing.T) {
	repo := NewUsersRepo(newMock(t))

	_, err := repo.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, users.ErrNotFound)
}
