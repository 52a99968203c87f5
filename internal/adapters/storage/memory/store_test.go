package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dogs-registry/internal/domain/catalog"
	"dogs-registry/internal/domain/dogs"
	"dogs-registry/internal/domain/owners"
	"dogs-registry/internal/domain/users"
)

type seeded struct {
	st      *Store
	owner   owners.Owner
	breed   catalog.Entry
	country catalog.Entry
	hobby   catalog.Entry
}

func seed(t *testing.T) seeded {
	t.Helper()
	ctx := context.Background()
	st := NewStore()

	s := seeded{
		st:      st,
		owner:   owners.Owner{ID: "owner-1", UserID: "user-1", FirstName: "Ivan"},
		breed:   catalog.Entry{ID: "breed-1", Kind: catalog.KindBreed, Name: "Labrador"},
		country: catalog.Entry{ID: "country-1", Kind: catalog.KindCountry, Name: "Russia"},
		hobby:   catalog.Entry{ID: "hobby-1", Kind: catalog.KindHobby, Name: "Agility"},
	}
	require.NoError(t, NewOwnerRepo(st).Create(ctx, s.owner))
	cat := NewCatalogRepo(st)
	require.NoError(t, cat.Create(ctx, s.breed))
	require.NoError(t, cat.Create(ctx, s.country))
	require.NoError(t, cat.Create(ctx, s.hobby))
	return s
}

func (s seeded) dog(id string, created time.Time) dogs.Dog {
	return dogs.Dog{
		ID:        id,
		Name:      "Rex",
		OwnerID:   s.owner.ID,
		BreedID:   s.breed.ID,
		CountryID: s.country.ID,
		HobbyID:   s.hobby.ID,
		UserID:    "user-1",
		CreatedAt: created,
	}
}

func TestDogRepo_CRUD(t *testing.T) {
	s := seed(t)
	ctx := context.Background()
	repo := NewDogRepo(s.st)

	t0 := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, s.dog("dog-2", t0.Add(time.Minute))))
	require.NoError(t, repo.Create(ctx, s.dog("dog-1", t0)))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "dog-1", list[0].ID)

	d := list[0]
	d.Name = "Barbos"
	require.NoError(t, repo.Update(ctx, d))
	got, err := repo.GetByID(ctx, "dog-1")
	require.NoError(t, err)
	assert.Equal(t, "Barbos", got.Name)

	require.NoError(t, repo.Delete(ctx, "dog-1"))
	assert.ErrorIs(t, repo.Delete(ctx, "dog-1"), dogs.ErrNotFound)
	_, err = repo.GetByID(ctx, "dog-1")
	assert.ErrorIs(t, err, dogs.ErrNotFound)
}

func TestDogRepo_EnforcesReferences(t *testing.T) {
	s := seed(t)
	repo := NewDogRepo(s.st)

	d := s.dog("dog-1", time.Now())
	d.BreedID = s.country.ID // existe, pero es de otro kind
	assert.ErrorIs(t, repo.Create(context.Background(), d), dogs.ErrInvalidReference)

	d = s.dog("dog-1", time.Now())
	d.OwnerID = "ghost"
	assert.ErrorIs(t, repo.Create(context.Background(), d), dogs.ErrInvalidReference)
}

func TestOwnerRepo_DeleteCascadesDogs(t *testing.T) {
	s := seed(t)
	ctx := context.Background()
	dogRepo := NewDogRepo(s.st)

	require.NoError(t, dogRepo.Create(ctx, s.dog("dog-1", time.Now())))
	require.NoError(t, NewOwnerRepo(s.st).Delete(ctx, s.owner.ID))

	list, err := dogRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCatalogRepo_UniquePerKindAndSorted(t *testing.T) {
	s := seed(t)
	ctx := context.Background()
	repo := NewCatalogRepo(s.st)

	err := repo.Create(ctx, catalog.Entry{ID: "breed-2", Kind: catalog.KindBreed, Name: "Labrador"})
	assert.ErrorIs(t, err, catalog.ErrConflict)

	require.NoError(t, repo.Create(ctx, catalog.Entry{ID: "breed-3", Kind: catalog.KindBreed, Name: "Beagle"}))
	list, err := repo.List(ctx, catalog.KindBreed)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Beagle", list[0].Name)

	_, err = repo.GetByID(ctx, catalog.KindHobby, "breed-3")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestUserRepo_UniqueUsername(t *testing.T) {
	repo := NewUserRepo(NewStore())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, users.User{ID: "u1", Username: "testuser"}))
	assert.ErrorIs(t, repo.Create(ctx, users.User{ID: "u2", Username: "testuser"}), users.ErrConflict)

	u, err := repo.GetByUsername(ctx, "testuser")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
}
