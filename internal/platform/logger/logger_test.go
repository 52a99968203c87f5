package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Warn, ParseLevel(" warning "))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("nope"))
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatText, ParseFormat("xml"))
}

func TestJSONLogger_WritesFieldsAndBase(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "dogs", Out: &buf})

	l.With(map[string]any{"request_id": "r-1"}).Info("hello", map[string]any{
		"status": 201,
		"err":    errors.New("boom"),
		" ":      "ignored",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "dogs", entry["app"])
	assert.Equal(t, "r-1", entry["request_id"])
	assert.Equal(t, float64(201), entry["status"])
	assert.Equal(t, "boom", entry["err"])
	_, hasBlank := entry[" "]
	assert.False(t, hasBlank)
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatText, Out: &buf})

	l.Info("hidden", nil)
	assert.Empty(t, buf.String())

	l.Error("shown", map[string]any{"k": "v"})
	assert.True(t, strings.Contains(buf.String(), "shown"))
	assert.True(t, strings.Contains(buf.String(), "k=v"))
}
