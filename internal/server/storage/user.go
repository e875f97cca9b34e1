package storage

import (
	"context"

	"github.com/iudanet/relocateme/internal/models"
)

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage
	// Returns ErrUserAlreadyExists if username is taken
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves user by username
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// UpdatePasswordHash replaces the stored password hash
	// Returns ErrUserNotFound if user doesn't exist
	UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error

	// UpdateCompletedSteps overwrites the completed step set (last write wins)
	// Returns ErrUserNotFound if user doesn't exist
	UpdateCompletedSteps(ctx context.Context, userID string, steps []int) error
}
