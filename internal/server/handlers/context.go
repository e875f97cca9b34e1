package handlers

import (
	"context"

	"github.com/iudanet/relocateme/internal/models"
)

// contextKey - тип для ключей контекста
type contextKey string

// UserKey - ключ для аутентифицированного пользователя в контексте
const UserKey contextKey = "user"

// WithUser сохраняет пользователя в контексте запроса
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// GetUser извлекает пользователя из контекста
func GetUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserKey).(*models.User)
	return user, ok && user != nil
}
