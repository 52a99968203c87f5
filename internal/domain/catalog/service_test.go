package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dogs-registry/internal/platform/validate"
)

type testRepo struct {
	byID map[string]Entry
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Entry{}}
}

func (r *testRepo) Create(_ context.Context, e Entry) error {
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) GetByID(_ context.Context, kind Kind, id string) (Entry, error) {
	e, ok := r.byID[id]
	if !ok || e.Kind != kind {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

func (r *testRepo) GetByName(_ context.Context, kind Kind, name string) (Entry, error) {
	for _, e := range r.byID {
		if e.Kind == kind && e.Name == name {
			return e, nil
		}
	}
	return Entry{}, ErrNotFound
}

func (r *testRepo) List(_ context.Context, kind Kind) ([]Entry, error) {
	out := make([]Entry, 0)
	for _, e := range r.byID {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func TestService_Create(t *testing.T) {
	svc := NewService(newTestRepo())
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	e, err := svc.Create(context.Background(), KindBreed, "  Labrador ")
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "Labrador", e.Name)
	assert.Equal(t, KindBreed, e.Kind)
	assert.Equal(t, now, e.CreatedAt)
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), KindHobby, " ")
	var ve validate.Errors
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "name_hobby", ve[0].Field)

	_, err = svc.Create(context.Background(), KindCountry, strings.Repeat("x", 101))
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "country", ve[0].Field)

	_, err = svc.Create(context.Background(), Kind("planet"), "Mars")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Create_DuplicatePerKind(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, KindBreed, "Poodle")
	require.NoError(t, err)

	_, err = svc.Create(ctx, KindBreed, "Poodle")
	assert.ErrorIs(t, err, ErrConflict)

	// mismo nombre en otro kind está permitido
	_, err = svc.Create(ctx, KindHobby, "Poodle")
	assert.NoError(t, err)
}

func TestService_Exists(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	e, err := svc.Create(ctx, KindCountry, "Russia")
	require.NoError(t, err)

	ok, err := svc.Exists(ctx, KindCountry, e.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Exists(ctx, KindBreed, e.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
