package storage

import (
	"context"
	"time"
)

// AuthStorage хранит сессию CLI клиента между запусками
type AuthStorage interface {
	// SaveAuth stores the current session, replacing any previous one
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth returns ErrAuthNotFound if no session exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes the session (logout)
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated reports whether a non-expired session exists
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData - сохраненная сессия: bearer токен и момент его истечения
type AuthData struct {
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // unix seconds
}

// Expired reports whether the token is past its expiry at now
func (a *AuthData) Expired(now time.Time) bool {
	return !now.Before(time.Unix(a.ExpiresAt, 0))
}
