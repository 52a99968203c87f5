package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dogs-registry/internal/domain/catalog"
)

func TestCatalogRepo_CreateUsesKindTable(t *testing.T) {
	mock := newMock(t)
	repo := NewCatalogRepo(mock)
	now := time.Now().UTC()

	mock.ExpectExec(`INSERT INTO hobbies`).
		WithArgs(testBreedID, "Fetch", now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), catalog.Entry{
		ID: testBreedID, Kind: catalog.KindHobby, Name: "Fetch", CreatedAt: now,
	})
	require.NoError(t, err)
}

func TestCatalogRepo_Create_Duplicate(t *testing.T) {
	mock := newMock(t)
	repo := NewCatalogRepo(mock)

	mock.ExpectExec(`INSERT INTO breeds`).
		WithArgs(pgxmock.AnyArg(), "Beagle", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), catalog.Entry{
		ID: testBreedID, Kind: catalog.KindBreed, Name: "Beagle", CreatedAt: time.Now(),
	})
	assert.ErrorIs(t, err, catalog.ErrConflict)
}

func TestCatalogRepo_UnknownKind(t *testing.T) {
	repo := NewCatalogRepo(newMock(t))

	_, err := repo.List(context.Background(), catalog.Kind("planet"))
	assert.ErrorIs(t, err, catalog.ErrInvalidInput)
}

func TestCatalogRepo_ListSortedByName(t *testing.T) {
	mock := newMock(t)
	repo := NewCatalogRepo(mock)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT id, name, created_at FROM countries ORDER BY name`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow("c1", "Argentina", now).
			AddRow("c2", "Spain", now))

	got, err := repo.List(context.Background(), catalog.KindCountry)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, catalog.KindCountry, got[0].Kind)
	assert.Equal(t, "Argentina", got[0].Name)
}

func TestCatalogRepo_GetByName_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewCatalogRepo(mock)

	mock.ExpectQuery(`SELECT id, name, created_at FROM breeds WHERE name = \$1`).
		WithArgs("Poodle").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByName(context.Background(), catalog.KindBreed, "Poodle")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
