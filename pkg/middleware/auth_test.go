package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okValidator(token string) (*Claims, error) {
	if token == "valid-token" {
		return &Claims{IdentityID: "identity-1", Email: "owner@example.com"}, nil
	}
	return nil, errors.New("bad token")
}

func authedHandler(t *testing.T, wantIdentity string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantIdentity, IdentityIDFromContext(r.Context()))
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_ValidToken(t *testing.T) {
	handler := Auth(okValidator)(authedHandler(t, "identity-1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/brands", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAuth_MissingHeader(t *testing.T) {
	handler := Auth(okValidator)(authedHandler(t, ""))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/brands", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "missing authorization header")
}

func TestAuth_MalformedHeader(t *testing.T) {
	handler := Auth(okValidator)(authedHandler(t, ""))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/brands", nil)
	req.Header.Set("Authorization", "valid-token")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid authorization header format")
}

func TestAuth_InvalidToken(t *testing.T) {
	handler := Auth(okValidator)(authedHandler(t, ""))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/brands", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid or expired token")
}

func TestIdentityIDFromContext_Unset(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, IdentityIDFromContext(req.Context()))
}
