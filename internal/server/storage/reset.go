package storage

import (
	"context"
	"time"

	"github.com/iudanet/relocateme/internal/models"
)

// ResetStorage defines interface for pending password reset requests
type ResetStorage interface {
	// SaveReset stores a reset request, replacing any pending one for the same username
	SaveReset(ctx context.Context, reset *models.PasswordReset) error

	// GetReset retrieves the reset request matching username and code
	// Returns ErrResetNotFound if there is no match
	GetReset(ctx context.Context, username, code string) (*models.PasswordReset, error)

	// DeleteReset removes the pending request for username
	DeleteReset(ctx context.Context, username string) error

	// DeleteExpiredResets removes requests that expired before now
	// Returns number of deleted requests
	DeleteExpiredResets(ctx context.Context, now time.Time) (int, error)
}
