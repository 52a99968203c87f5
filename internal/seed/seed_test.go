package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dogs-registry/internal/adapters/storage/memory"
	"dogs-registry/internal/domain/catalog"
)

func TestLoadFile_Embedded(t *testing.T) {
	f, err := LoadFile("")
	require.NoError(t, err)
	assert.Contains(t, f.Breeds, "Лабрадор")
	assert.Contains(t, f.Countries, "Россия")
	assert.Contains(t, f.Hobbies, "Аджилити")
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	_, err := Load(strings.NewReader("planets: [Mars]\n"))
	assert.Error(t, err)
}

func TestApply_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := catalog.NewService(memory.NewCatalogRepo(memory.NewStore()))
	f := Fixtures{
		Breeds:    []string{"Beagle", "Poodle"},
		Countries: []string{"Spain"},
		Hobbies:   []string{"Fetch"},
	}

	res, err := Apply(ctx, svc, f, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created[catalog.KindBreed])
	assert.Equal(t, 1, res.Created[catalog.KindCountry])

	res, err = Apply(ctx, svc, f, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created[catalog.KindBreed])
	assert.Equal(t, 2, res.Skipped[catalog.KindBreed])

	breeds, err := svc.List(ctx, catalog.KindBreed)
	require.NoError(t, err)
	assert.Len(t, breeds, 2)
}

func TestApply_InvalidName(t *testing.T) {
	svc := catalog.NewService(memory.NewCatalogRepo(memory.NewStore()))

	_, err := Apply(context.Background(), svc, Fixtures{Hobbies: []string{"  "}}, nil)
	assert.Error(t, err)
}
