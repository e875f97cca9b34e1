package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/relocateme/internal/crypto"
	"github.com/iudanet/relocateme/internal/models"
	"github.com/iudanet/relocateme/internal/server/services"
	"github.com/iudanet/relocateme/pkg/api"
)

func TestAuthHandler_Register(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewAuthHandler(setupTestLogger(), env.auth)

	tests := []struct {
		name       string
		body       api.RegisterRequest
		wantStatus int
	}{
		{
			name:       "new user",
			body:       api.RegisterRequest{Username: "jane_doe", Email: "jane@example.com", Password: "password123"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "duplicate username",
			body:       api.RegisterRequest{Username: testUsername, Password: "password123"},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "invalid username",
			body:       api.RegisterRequest{Username: "a b", Password: "password123"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "short password",
			body:       api.RegisterRequest{Username: "john", Password: "123"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Register(w, jsonRequest(t, http.MethodPost, "/api/auth/register", tt.body))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				resp := decodeBody[api.RegisterResponse](t, w)
				assert.NotEmpty(t, resp.UserID)
				assert.Equal(t, tt.body.Username, resp.Username)
			} else {
				resp := decodeBody[api.ErrorResponse](t, w)
				assert.Equal(t, http.StatusText(tt.wantStatus), resp.Error)
				assert.NotEmpty(t, resp.Message)
			}
		})
	}
}

func TestAuthHandler_InvalidBody(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewAuthHandler(setupTestLogger(), env.auth)

	for name, fn := range map[string]http.HandlerFunc{
		"register": handler.Register,
		"login":    handler.Login,
		"reset":    handler.RequestPasswordReset,
		"complete": handler.CompletePasswordReset,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
			w := httptest.NewRecorder()
			fn(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewAuthHandler(setupTestLogger(), env.auth)

	w := httptest.NewRecorder()
	handler.Login(w, jsonRequest(t, http.MethodPost, "/api/auth/login",
		api.LoginRequest{Username: testUsername, Password: testPassword}))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[api.TokenResponse](t, w)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, int64(1800), resp.ExpiresIn)

	user, err := env.auth.Authenticate(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, testUsername, user.Username)

	for _, creds := range []api.LoginRequest{
		{Username: testUsername, Password: "wrong-password"},
		{Username: "nobody", Password: testPassword},
	} {
		w := httptest.NewRecorder()
		handler.Login(w, jsonRequest(t, http.MethodPost, "/api/auth/login", creds))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		body := decodeBody[api.ErrorResponse](t, w)
		assert.Equal(t, services.ErrAuthentication.Error(), body.Message)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewAuthHandler(setupTestLogger(), env.auth)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), env.user(t))
	w := httptest.NewRecorder()
	handler.Me(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")

	resp := decodeBody[api.UserResponse](t, w)
	assert.Equal(t, testUsername, resp.Username)
	assert.Equal(t, "relocate@example.com", resp.Email)
	assert.True(t, resp.IsActive)
	assert.Equal(t, []int{}, resp.CompletedSteps)

	w = httptest.NewRecorder()
	handler.Me(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_PasswordResetFlow(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewAuthHandler(setupTestLogger(), env.auth)

	// ответ одинаков для существующего и несуществующего пользователя
	var bodies []string
	for _, username := range []string{testUsername, "ghost"} {
		w := httptest.NewRecorder()
		handler.RequestPasswordReset(w, jsonRequest(t, http.MethodPost, "/api/auth/reset-password",
			api.PasswordResetRequest{Username: username}))
		require.Equal(t, http.StatusOK, w.Code)
		bodies = append(bodies, w.Body.String())
	}
	assert.Equal(t, bodies[0], bodies[1])
	assert.NotContains(t, bodies[0], crypto.LegacyResetCode)

	complete := func(code, password string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		handler.CompletePasswordReset(w, jsonRequest(t, http.MethodPost, "/api/auth/complete-password-reset",
			api.CompletePasswordResetRequest{Username: testUsername, ResetCode: code, NewPassword: password}))
		return w
	}

	w := complete("WRONG", "NewPassword2025")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, services.ErrInvalidResetCode.Error(), decodeBody[api.ErrorResponse](t, w).Message)

	w = complete(crypto.LegacyResetCode, "NewPassword2025")
	require.Equal(t, http.StatusOK, w.Code)

	_, err := env.auth.Login(context.Background(), testUsername, "NewPassword2025")
	require.NoError(t, err)

	w = complete(crypto.LegacyResetCode, "NewPassword2026")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_CompletePasswordReset_Expired(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewAuthHandler(setupTestLogger(), env.auth)
	ctx := context.Background()

	past := time.Now().Add(-2 * time.Hour)
	require.NoError(t, env.store.SaveReset(ctx, &models.PasswordReset{
		Username:  testUsername,
		Code:      crypto.LegacyResetCode,
		CreatedAt: past,
		ExpiresAt: past.Add(time.Hour),
	}))

	w := httptest.NewRecorder()
	handler.CompletePasswordReset(w, jsonRequest(t, http.MethodPost, "/api/auth/complete-password-reset",
		api.CompletePasswordResetRequest{Username: testUsername, ResetCode: crypto.LegacyResetCode, NewPassword: "NewPassword2025"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, services.ErrResetExpired.Error(), decodeBody[api.ErrorResponse](t, w).Message)

	_, err := env.store.GetReset(ctx, testUsername, crypto.LegacyResetCode)
	assert.Error(t, err)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: nil, want: http.StatusOK},
		{err: services.ErrAuthentication, want: http.StatusUnauthorized},
		{err: services.ErrUserExists, want: http.StatusConflict},
		{err: services.ErrInvalidResetCode, want: http.StatusBadRequest},
		{err: services.ErrResetExpired, want: http.StatusBadRequest},
		{err: services.ErrInvalidStep, want: http.StatusBadRequest},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), "%v", tt.err)
	}
}
