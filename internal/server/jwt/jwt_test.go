package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := NewService("test-secret", 30*time.Minute)

	token, expiresIn, err := svc.GenerateAccessToken("user-1", "relocate_user")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(1800), expiresIn)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "relocate_user", claims.Username())
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, Issuer, claims.Issuer)
	assert.WithinDuration(t, claims.IssuedAt.Add(30*time.Minute), claims.ExpiresAt.Time, time.Second)
}

func TestService_Expired(t *testing.T) {
	issued := time.Now().Add(-time.Hour)
	svc := NewService("test-secret", 30*time.Minute).WithClock(func() time.Time { return issued })

	token, _, err := svc.GenerateAccessToken("user-1", "relocate_user")
	require.NoError(t, err)

	svc.WithClock(time.Now)
	_, err = svc.ValidateAccessToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestService_Invalid(t *testing.T) {
	svc := NewService("test-secret", time.Minute)
	other := NewService("other-secret", time.Minute)

	foreign, _, err := other.GenerateAccessToken("user-1", "relocate_user")
	require.NoError(t, err)

	valid, _, err := svc.GenerateAccessToken("user-1", "relocate_user")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "relocate_user",
		Issuer:    Issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	wrongIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "relocate_user",
		Issuer:    "someone-else",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "relocate_user",
		Issuer:  Issuer,
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.token"},
		{name: "wrong secret", token: foreign},
		{name: "tampered", token: valid + "x"},
		{name: "alg none", token: noneToken},
		{name: "wrong issuer", token: wrongIssuer},
		{name: "no expiry", token: noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateAccessToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
