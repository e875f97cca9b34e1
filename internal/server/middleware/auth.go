package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/relocateme/internal/models"
	"github.com/iudanet/relocateme/internal/server/handlers"
	"github.com/iudanet/relocateme/internal/server/services"
)

// Authenticator resolves a bearer token to the user it was issued to
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// AuthMiddleware создает middleware для проверки bearer токена.
// Найденный пользователь кладется в контекст запроса (handlers.GetUser).
func AuthMiddleware(logger *slog.Logger, auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := bearerToken(r)
			if !ok {
				logger.WarnContext(ctx, "missing or malformed Authorization header")
				unauthorized(w)
				return
			}

			user, err := auth.Authenticate(ctx, token)
			if err != nil {
				if handlers.StatusFor(err) != http.StatusUnauthorized {
					logger.ErrorContext(ctx, "failed to authenticate request", slog.Any("error", err))
					handlers.WriteError(w, "internal server error", http.StatusInternalServerError)
					return
				}
				logger.WarnContext(ctx, "invalid access token", slog.Any("error", err))
				unauthorized(w)
				return
			}

			logger.DebugContext(ctx, "user authenticated", slog.String("user_id", user.ID))

			next.ServeHTTP(w, r.WithContext(handlers.WithUser(ctx, user)))
		})
	}
}

// bearerToken извлекает токен из заголовка "Authorization: Bearer <token>"
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	handlers.WriteError(w, services.ErrAuthentication.Error(), http.StatusUnauthorized)
}
