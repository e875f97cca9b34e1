package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/relocateme/internal/models"
	"github.com/iudanet/relocateme/internal/server/storage"
)

// SaveReset stores a reset request, replacing a pending one for the same username
func (s *Storage) SaveReset(ctx context.Context, reset *models.PasswordReset) error {
	query := s.rebind(`
		INSERT INTO password_resets (username, code, created_at, expires_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (username) DO UPDATE
		SET code = excluded.code, created_at = excluded.created_at, expires_at = excluded.expires_at
	`)

	_, err := s.db.ExecContext(ctx, query,
		reset.Username,
		reset.Code,
		reset.CreatedAt.UTC(),
		reset.ExpiresAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save password reset: %w", err)
	}

	return nil
}

// GetReset retrieves the reset request matching username and code
func (s *Storage) GetReset(ctx context.Context, username, code string) (*models.PasswordReset, error) {
	query := s.rebind(`
		SELECT username, code, created_at, expires_at
		FROM password_resets
		WHERE username = ? AND code = ?
	`)

	reset := &models.PasswordReset{}

	err := s.db.QueryRowContext(ctx, query, username, code).Scan(
		&reset.Username,
		&reset.Code,
		&reset.CreatedAt,
		&reset.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrResetNotFound
		}
		return nil, fmt.Errorf("failed to get password reset: %w", err)
	}

	return reset, nil
}

// DeleteReset removes the pending request for username. Missing rows are not an error.
func (s *Storage) DeleteReset(ctx context.Context, username string) error {
	query := s.rebind(`DELETE FROM password_resets WHERE username = ?`)

	if _, err := s.db.ExecContext(ctx, query, username); err != nil {
		return fmt.Errorf("failed to delete password reset: %w", err)
	}

	return nil
}

// DeleteExpiredResets removes requests that expired before now
func (s *Storage) DeleteExpiredResets(ctx context.Context, now time.Time) (int, error) {
	query := s.rebind(`DELETE FROM password_resets WHERE expires_at < ?`)

	result, err := s.db.ExecContext(ctx, query, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired resets: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}
