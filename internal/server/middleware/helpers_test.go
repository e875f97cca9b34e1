package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/iudanet/relocateme/internal/models"
	"github.com/iudanet/relocateme/internal/server/services"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// authenticatorFunc adapts a function to Authenticator
type authenticatorFunc func(ctx context.Context, token string) (*models.User, error)

func (f authenticatorFunc) Authenticate(ctx context.Context, token string) (*models.User, error) {
	return f(ctx, token)
}

// staticAuth accepts exactly one token
func staticAuth(valid string, user *models.User) Authenticator {
	return authenticatorFunc(func(_ context.Context, token string) (*models.User, error) {
		if token != valid {
			return nil, services.ErrAuthentication
		}
		return user, nil
	})
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
