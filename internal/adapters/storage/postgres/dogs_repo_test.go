package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dogs-registry/internal/domain/dogs"
)

const (
	testDogID   = "0b9e4a3c-1c9f-4a55-8c1c-0f7c2f0a0001"
	testUserID  = "0b9e4a3c-1c9f-4a55-8c1c-0f7c2f0a0002"
	testOwnerID = "0b9e4a3c-1c9f-4a55-8c1c-0f7c2f0a0003"
	testBreedID = "0b9e4a3c-1c9f-4a55-8c1c-0f7c2f0a0004"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func sampleDog() dogs.Dog {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return dogs.Dog{
		ID:        testDogID,
		Name:      "Rex",
		BreedID:   testBreedID,
		OwnerID:   testOwnerID,
		CountryID: testBreedID,
		HobbyID:   testBreedID,
		UserID:    testUserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func dogRows(d dogs.Dog) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "name", "breed_id", "owner_id", "country_id", "hobby_id", "user_id", "created_at", "updated_at",
	}).AddRow(d.ID, d.Name, d.BreedID, d.OwnerID, d.CountryID, d.HobbyID, d.UserID, d.CreatedAt, d.UpdatedAt)
}

func TestDogsRepo_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewDogsRepo(mock)
	d := sampleDog()

	mock.ExpectExec(`INSERT INTO dogs`).
		WithArgs(d.ID, d.Name, d.BreedID, d.OwnerID, d.CountryID, d.HobbyID, d.UserID, d.CreatedAt, d.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), d))
}

func TestDogsRepo_Create_ForeignKeyIsInvalidReference(t *testing.T) {
	mock := newMock(t)
	repo := NewDogsRepo(mock)

	mock.ExpectExec(`INSERT INTO dogs`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "dogs_owner_id_fkey"})

	err := repo.Create(context.Background(), sampleDog())
	assert.ErrorIs(t, err, dogs.ErrInvalidReference)
}

func TestDogsRepo_Create_NonUUIDUser(t *testing.T) {
	repo := NewDogsRepo(newMock(t))
	d := sampleDog()
	d.UserID = "dev-user"

	assert.ErrorIs(t, repo.Create(context.Background(), d), dogs.ErrInvalidInput)
}

func TestDogsRepo_GetByID(t *testing.T) {
	mock := newMock(t)
	repo := NewDogsRepo(mock)
	d := sampleDog()

	mock.ExpectQuery(`SELECT .* FROM dogs WHERE id = \$1`).
		WithArgs(d.ID).
		WillReturnRows(dogRows(d))

	got, err := repo.GetByID(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestDogsRepo_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewDogsRepo(mock)

	mock.ExpectQuery(`SELECT .* FROM dogs WHERE id = \$1`).
		WithArgs(testDogID).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), testDogID)
	assert.ErrorIs(t, err, dogs.ErrNotFound)

	// ids que no son uuid ni llegan a la base
	_, err = repo.GetByID(context.Background(), "42")
	assert.ErrorIs(t, err, dogs.ErrNotFound)
}

func TestDogsRepo_Update_NoRows(t *testing.T) {
	mock := newMock(t)
	repo := NewDogsRepo(mock)
	d := sampleDog()

	mock.ExpectExec(`UPDATE dogs`).
		WithArgs(d.ID, d.Name, d.BreedID, d.OwnerID, d.CountryID, d.HobbyID, d.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, repo.Update(context.Background(), d), dogs.ErrNotFound)
}

func TestDogsRepo_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewDogsRepo(mock)

	mock.ExpectExec(`DELETE FROM dogs WHERE id = \$1`).
		WithArgs(testDogID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), testDogID))
}

func TestDogsRepo_List(t *testing.T) {
	mock := newMock(t)
	repo := NewDogsRepo(mock)
	d := sampleDog()

	mock.ExpectQuery(`SELECT .* FROM dogs ORDER BY created_at`).
		WillReturnRows(dogRows(d))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Rex", got[0].Name)
}

func TestDogsRepo_List_QueryError(t *testing.T) {
	mock := newMock(t)
	repo := NewDogsRepo(mock)
	boom := errors.New("connection reset")

	mock.ExpectQuery(`SELECT .* FROM dogs`).WillReturnError(boom)

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, boom)
}
