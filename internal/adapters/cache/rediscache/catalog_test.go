package rediscache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dogs-registry/internal/adapters/storage/memory"
	"dogs-registry/internal/domain/catalog"
)

// countingRepo cuenta cuántas lecturas llegan al repo real.
type countingRepo struct {
	catalog.Repository
	lists int
	gets  int
}

func (c *countingRepo) List(ctx context.Context, kind catalog.Kind) ([]catalog.Entry, error) {
	c.lists++
	return c.Repository.List(ctx, kind)
}

func (c *countingRepo) GetByID(ctx context.Context, kind catalog.Kind, id string) (catalog.Entry, error) {
	c.gets++
	return c.Repository.GetByID(ctx, kind, id)
}

func setup(t *testing.T) (*miniredis.Miniredis, *countingRepo, *CatalogRepo) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	inner := &countingRepo{Repository: memory.NewCatalogRepo(memory.NewStore())}
	return mr, inner, NewCatalogRepo(inner, client, time.Minute, nil)
}

func seedEntry(t *testing.T, repo catalog.Repository, kind catalog.Kind, id, name string) catalog.Entry {
	t.Helper()
	e := catalog.Entry{ID: id, Kind: kind, Name: name, CreatedAt: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, repo.Create(context.Background(), e))
	return e
}

func TestCatalogRepo_ListIsReadThrough(t *testing.T) {
	mr, inner, repo := setup(t)
	ctx := context.Background()
	seedEntry(t, repo, catalog.KindBreed, "b1", "Beagle")

	first, err := repo.List(ctx, catalog.KindBreed)
	require.NoError(t, err)
	second, err := repo.List(ctx, catalog.KindBreed)
	require.NoError(t, err)

	assert.Equal(t, 1, inner.lists)
	assert.Equal(t, first, second)
	assert.True(t, mr.Exists(listKey(catalog.KindBreed)))
	assert.Equal(t, time.Minute, mr.TTL(listKey(catalog.KindBreed)))
}

func TestCatalogRepo_CreateInvalidatesList(t *testing.T) {
	_, inner, repo := setup(t)
	ctx := context.Background()
	seedEntry(t, repo, catalog.KindHobby, "h1", "Fetch")

	_, err := repo.List(ctx, catalog.KindHobby)
	require.NoError(t, err)

	seedEntry(t, repo, catalog.KindHobby, "h2", "Agility")

	items, err := repo.List(ctx, catalog.KindHobby)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.lists)
	require.Len(t, items, 2)
	assert.Equal(t, "Agility", items[0].Name)
}

func TestCatalogRepo_GetByIDCachesHitsOnly(t *testing.T) {
	_, inner, repo := setup(t)
	ctx := context.Background()
	want := seedEntry(t, repo, catalog.KindCountry, "c1", "Spain")

	_, err := repo.GetByID(ctx, catalog.KindCountry, "missing")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	for range 3 {
		got, err := repo.GetByID(ctx, catalog.KindCountry, "c1")
		require.NoError(t, err)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, catalog.KindCountry, got.Kind)
	}
	assert.Equal(t, 2, inner.gets)
}

func TestCatalogRepo_RedisDownFallsBack(t *testing.T) {
	mr, inner, repo := setup(t)
	ctx := context.Background()
	seedEntry(t, repo, catalog.KindBreed, "b1", "Beagle")

	mr.Close()

	items, err := repo.List(ctx, catalog.KindBreed)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, inner.lists)
}
