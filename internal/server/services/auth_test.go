package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/relocateme/internal/crypto"
	"github.com/iudanet/relocateme/internal/server/jwt"
	"github.com/iudanet/relocateme/internal/validation"
)

const testPassword = "SecurePass2025!"

func init() {
	crypto.PasswordCost = bcrypt.MinCost
}

func newTestAuth(t *testing.T, codes crypto.ResetCodeGenerator) (*AuthService, *mockStore) {
	t.Helper()
	store := newMockStore()
	svc := NewAuthService(setupTestLogger(), store, store, jwt.NewService("test-secret", 30*time.Minute), codes, time.Hour)
	return svc, store
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestAuth(t, crypto.StaticResetCode(crypto.LegacyResetCode))

	user, err := svc.Register(ctx, "jane", "jane@example.com", testPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.True(t, user.IsActive)
	assert.Empty(t, user.CompletedSteps)
	assert.NotEqual(t, testPassword, store.users["jane"].PasswordHash)

	_, err = svc.Register(ctx, "jane", "", testPassword)
	assert.ErrorIs(t, err, ErrUserExists)

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{name: "bad username", username: "j", password: testPassword},
		{name: "bad email", username: "jane2", email: "nope", password: testPassword},
		{name: "short password", username: "jane3", password: "short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.username, tt.email, tt.password)
			assert.ErrorIs(t, err, validation.ErrInvalidInput)
		})
	}
}

func TestAuthService_EnsureUser(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestAuth(t, crypto.StaticResetCode(crypto.LegacyResetCode))

	created, err := svc.EnsureUser(ctx, "relocate_user", "relocate@example.com", testPassword)
	require.NoError(t, err)
	assert.True(t, created)
	hash := store.users["relocate_user"].PasswordHash

	created, err = svc.EnsureUser(ctx, "relocate_user", "relocate@example.com", "another-password")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, hash, store.users["relocate_user"].PasswordHash)

	store.getUserErr = errors.New("db down")
	_, err = svc.EnsureUser(ctx, "other", "", testPassword)
	require.Error(t, err)
}

func TestAuthService_LoginAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuth(t, crypto.StaticResetCode(crypto.LegacyResetCode))

	_, err := svc.Register(ctx, "relocate_user", "", testPassword)
	require.NoError(t, err)

	token, err := svc.Login(ctx, "relocate_user", testPassword)
	require.NoError(t, err)
	assert.Equal(t, int64(1800), token.ExpiresIn)

	user, err := svc.Authenticate(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "relocate_user", user.Username)

	_, err = svc.Login(ctx, "relocate_user", "wrong-password")
	assert.ErrorIs(t, err, ErrAuthentication)

	_, err = svc.Login(ctx, "ghost", testPassword)
	assert.ErrorIs(t, err, ErrAuthentication)

	_, err = svc.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestAuthService_Authenticate_Expired(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	tokens := jwt.NewService("test-secret", 30*time.Minute)
	svc := NewAuthService(setupTestLogger(), store, store, tokens, crypto.StaticResetCode("x"), time.Hour)

	_, err := svc.Register(ctx, "relocate_user", "", testPassword)
	require.NoError(t, err)

	tokens.WithClock(func() time.Time { return time.Now().Add(-time.Hour) })
	token, err := svc.Login(ctx, "relocate_user", testPassword)
	require.NoError(t, err)
	tokens.WithClock(time.Now)

	_, err = svc.Authenticate(ctx, token.AccessToken)
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestAuthService_Authenticate_UserGone(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestAuth(t, crypto.StaticResetCode("x"))

	_, err := svc.Register(ctx, "relocate_user", "", testPassword)
	require.NoError(t, err)
	token, err := svc.Login(ctx, "relocate_user", testPassword)
	require.NoError(t, err)

	delete(store.users, "relocate_user")
	_, err = svc.Authenticate(ctx, token.AccessToken)
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestAuthService_Inactive(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestAuth(t, crypto.StaticResetCode("x"))

	_, err := svc.Register(ctx, "relocate_user", "", testPassword)
	require.NoError(t, err)
	token, err := svc.Login(ctx, "relocate_user", testPassword)
	require.NoError(t, err)

	store.users["relocate_user"].IsActive = false

	_, err = svc.Login(ctx, "relocate_user", testPassword)
	assert.ErrorIs(t, err, ErrAuthentication)
	_, err = svc.Authenticate(ctx, token.AccessToken)
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestAuth(t, crypto.StaticResetCode(crypto.LegacyResetCode))

	_, err := svc.Register(ctx, "relocate_user", "", testPassword)
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(ctx, "relocate_user"))
	reset, ok := store.resets["relocate_user"]
	require.True(t, ok)
	assert.Equal(t, crypto.LegacyResetCode, reset.Code)
	assert.Equal(t, time.Hour, reset.ExpiresAt.Sub(reset.CreatedAt))

	// неизвестный пользователь: тот же ответ, без записи
	require.NoError(t, svc.RequestPasswordReset(ctx, "ghost"))
	assert.Len(t, store.resets, 1)
}

func TestAuthService_RequestPasswordReset_RandomCodeLogged(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	svc := NewAuthService(logger, store, store, jwt.NewService("s", time.Minute), crypto.RandomResetCode{Digits: 6}, 0)

	_, err := svc.Register(ctx, "relocate_user", "", testPassword)
	require.NoError(t, err)
	require.NoError(t, svc.RequestPasswordReset(ctx, "relocate_user"))

	code := store.resets["relocate_user"].Code
	assert.Regexp(t, `^[0-9]{6}$`, code)
	assert.Contains(t, logs.String(), code)
}

func TestAuthService_CompletePasswordReset(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestAuth(t, crypto.StaticResetCode(crypto.LegacyResetCode))

	_, err := svc.Register(ctx, "relocate_user", "", testPassword)
	require.NoError(t, err)
	require.NoError(t, svc.RequestPasswordReset(ctx, "relocate_user"))

	err = svc.CompletePasswordReset(ctx, "relocate_user", "wrong-code", "NewPassword123")
	assert.ErrorIs(t, err, ErrInvalidResetCode)

	// невалидный пароль не расходует код
	err = svc.CompletePasswordReset(ctx, "relocate_user", crypto.LegacyResetCode, "short")
	assert.ErrorIs(t, err, validation.ErrInvalidInput)
	assert.Contains(t, store.resets, "relocate_user")

	require.NoError(t, svc.CompletePasswordReset(ctx, "relocate_user", crypto.LegacyResetCode, "NewPassword123"))
	assert.NotContains(t, store.resets, "relocate_user")

	_, err = svc.Login(ctx, "relocate_user", "NewPassword123")
	require.NoError(t, err)
	_, err = svc.Login(ctx, "relocate_user", testPassword)
	assert.ErrorIs(t, err, ErrAuthentication)

	// код одноразовый
	err = svc.CompletePasswordReset(ctx, "relocate_user", crypto.LegacyResetCode, "AnotherPass123")
	assert.ErrorIs(t, err, ErrInvalidResetCode)
}

func TestAuthService_CompletePasswordReset_Expired(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestAuth(t, crypto.StaticResetCode(crypto.LegacyResetCode))

	_, err := svc.Register(ctx, "relocate_user", "", testPassword)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	require.NoError(t, svc.RequestPasswordReset(ctx, "relocate_user"))
	svc.now = time.Now

	err = svc.CompletePasswordReset(ctx, "relocate_user", crypto.LegacyResetCode, "NewPassword123")
	assert.ErrorIs(t, err, ErrResetExpired)
	assert.NotContains(t, store.resets, "relocate_user")

	err = svc.CompletePasswordReset(ctx, "relocate_user", crypto.LegacyResetCode, "NewPassword123")
	assert.ErrorIs(t, err, ErrInvalidResetCode)
}
