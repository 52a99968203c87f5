package validate

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string  `json:"name" validate:"notblank,max=5"`
	Ref      string  `json:"ref" validate:"required,uuid"`
	Username string  `json:"username" validate:"omitempty,username"`
	Optional *string `json:"optional,omitempty" validate:"omitempty,min=2"`
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	err := Struct(sample{Name: "  ", Ref: "nope", Username: "bad name!"})
	require.Error(t, err)

	var ve Errors
	require.True(t, errors.As(err, &ve))

	byField := map[string]FieldError{}
	for _, fe := range ve {
		byField[fe.Field] = fe
	}
	assert.Equal(t, "is required", byField["name"].Message)
	assert.Equal(t, "must be a valid UUID", byField["ref"].Message)
	assert.Equal(t, "username", byField["username"].Tag)
}

func TestStruct_OK(t *testing.T) {
	short := "ab"
	err := Struct(sample{
		Name:     "Rex",
		Ref:      "4f0f6c1e-8f55-4c8a-9f3c-1d2e3f4a5b6c",
		Username: "ivan.petrov",
		Optional: &short,
	})
	assert.NoError(t, err)
}

func TestErrors_HTTP(t *testing.T) {
	he := Field("breed", "does not exist").HTTP()
	assert.Equal(t, http.StatusBadRequest, he.Status)
	require.Len(t, he.Errors, 1)
	assert.Equal(t, "breed", he.Errors[0].Field)
	assert.Equal(t, "does not exist", he.Errors[0].Error)
}
