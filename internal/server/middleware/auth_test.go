package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/relocateme/internal/models"
	"github.com/iudanet/relocateme/internal/server/handlers"
)

func TestAuthMiddleware_Success(t *testing.T) {
	user := &models.User{ID: "user123", Username: "relocate_user"}
	mw := AuthMiddleware(setupTestLogger(), staticAuth("good-token", user))

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := handlers.GetUser(r.Context())
		require.True(t, ok, "user should be in context")
		assert.Equal(t, "user123", got.ID)
		okHandler(w, r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	user := &models.User{ID: "user123"}
	mw := AuthMiddleware(setupTestLogger(), staticAuth("good-token", user))
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	}))

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic good-token"},
		{name: "no token", header: "Bearer "},
		{name: "no separator", header: "Bearergood-token"},
		{name: "invalid token", header: "Bearer bad-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			assert.Contains(t, w.Body.String(), "could not validate credentials")
		})
	}
}

func TestAuthMiddleware_CaseInsensitiveScheme(t *testing.T) {
	user := &models.User{ID: "user123"}
	handler := AuthMiddleware(setupTestLogger(), staticAuth("good-token", user))(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer good-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_StorageFailure(t *testing.T) {
	auth := authenticatorFunc(func(context.Context, string) (*models.User, error) {
		return nil, errors.New("database is locked")
	})
	handler := AuthMiddleware(setupTestLogger(), auth)(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer any")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "database is locked")
}
