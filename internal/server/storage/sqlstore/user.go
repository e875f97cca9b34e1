package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/iudanet/relocateme/internal/models"
	"github.com/iudanet/relocateme/internal/server/storage"
)

const userColumns = `id, username, email, password_hash, is_active, completed_steps, created_at`

// CreateUser creates a new user in the storage
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	steps, err := encodeSteps(user.CompletedSteps)
	if err != nil {
		return err
	}

	query := s.rebind(`
		INSERT INTO users (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)

	_, err = s.db.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.IsActive,
		steps,
		user.CreatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByUsername retrieves user by username
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := s.rebind(`SELECT ` + userColumns + ` FROM users WHERE username = ?`)
	return s.getUser(ctx, query, username)
}

// GetUserByID retrieves user by ID
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	query := s.rebind(`SELECT ` + userColumns + ` FROM users WHERE id = ?`)
	return s.getUser(ctx, query, userID)
}

func (s *Storage) getUser(ctx context.Context, query string, arg string) (*models.User, error) {
	user := &models.User{}
	var steps string

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.IsActive,
		&steps,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := json.Unmarshal([]byte(steps), &user.CompletedSteps); err != nil {
		return nil, fmt.Errorf("failed to decode completed steps of %s: %w", user.ID, err)
	}
	if user.CompletedSteps == nil {
		user.CompletedSteps = []int{}
	}

	return user, nil
}

// UpdatePasswordHash replaces the stored password hash
func (s *Storage) UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error {
	query := s.rebind(`UPDATE users SET password_hash = ? WHERE id = ?`)

	result, err := s.db.ExecContext(ctx, query, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return expectAffected(result, storage.ErrUserNotFound)
}

// UpdateCompletedSteps overwrites the completed step set
func (s *Storage) UpdateCompletedSteps(ctx context.Context, userID string, steps []int) error {
	encoded, err := encodeSteps(steps)
	if err != nil {
		return err
	}

	query := s.rebind(`UPDATE users SET completed_steps = ? WHERE id = ?`)

	result, err := s.db.ExecContext(ctx, query, encoded, userID)
	if err != nil {
		return fmt.Errorf("failed to update completed steps: %w", err)
	}

	return expectAffected(result, storage.ErrUserNotFound)
}

// encodeSteps хранит набор как отсортированный JSON массив
func encodeSteps(steps []int) (string, error) {
	sorted := slices.Compact(slices.Sorted(slices.Values(steps)))
	if sorted == nil {
		sorted = []int{}
	}

	data, err := json.Marshal(sorted)
	if err != nil {
		return "", fmt.Errorf("failed to encode completed steps: %w", err)
	}

	return string(data), nil
}

func expectAffected(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return notFound
	}

	return nil
}
