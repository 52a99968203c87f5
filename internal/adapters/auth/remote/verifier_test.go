package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != verifyPath || r.Header.Get("X-Api-Key") != "secret" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		var in verifyRequest
		_ = json.NewDecoder(r.Body).Decode(&in)
		switch in.Token {
		case "good":
			_ = json.NewEncoder(w).Encode(verifyResponse{UserID: " u-1 ", Username: "ivan"})
		case "empty":
			_ = json.NewEncoder(w).Encode(verifyResponse{})
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVerifier_Verify(t *testing.T) {
	srv := newServer(t)
	v, err := NewVerifier(Config{BaseURL: srv.URL, APIKey: "secret"})
	require.NoError(t, err)

	claims, err := v.Verify(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "ivan", claims.Username)
}

func TestVerifier_Rejected(t *testing.T) {
	srv := newServer(t)
	v, err := NewVerifier(Config{BaseURL: srv.URL, APIKey: "secret"})
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = v.Verify(context.Background(), "empty")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestVerifier_WrongAPIKeyIsUpstreamError(t *testing.T) {
	srv := newServer(t)
	v, err := NewVerifier(Config{BaseURL: srv.URL, APIKey: "other"})
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), "good")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestNewVerifier_NotConfigured(t *testing.T) {
	_, err := NewVerifier(Config{BaseURL: "http://x"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
