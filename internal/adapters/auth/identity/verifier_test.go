package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentityStub(t *testing.T, validToken, userID string) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/session" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+validToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"userId": userID,
			"email":  "ana@example.com",
		})
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestVerify_ValidSession(t *testing.T) {
	ts := newIdentityStub(t, "tok-123", "user-1")

	v, err := NewVerifier(Config{BaseURL: ts.URL})
	require.NoError(t, err)

	claims, err := v.Verify(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestVerify_RejectedSession(t *testing.T) {
	ts := newIdentityStub(t, "tok-123", "user-1")

	v, err := NewVerifier(Config{BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), "tok-equivocado")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = v.Verify(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerify_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(ts.Close)

	v, err := NewVerifier(Config{BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), "tok-123")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestVerify_SendsAPIKey(t *testing.T) {
	var gotKey string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		_ = json.NewEncoder(w).Encode(map[string]string{"userId": "user-1"})
	}))
	t.Cleanup(ts.Close)

	v, err := NewVerifier(Config{BaseURL: ts.URL, APIKey: "clave-interna"})
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "clave-interna", gotKey)
}

func TestNewVerifier_RequiresBaseURL(t *testing.T) {
	_, err := NewVerifier(Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
