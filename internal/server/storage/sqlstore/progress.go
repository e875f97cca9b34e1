package sqlstore

import (
	"context"
	"fmt"

	"github.com/iudanet/relocateme/internal/models"
)

// AppendProgressLog appends a toggle event to the journal
func (s *Storage) AppendProgressLog(ctx context.Context, entry *models.ProgressLogEntry) error {
	query := s.rebind(`
		INSERT INTO progress_log (id, user_id, step_id, completed, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)

	_, err := s.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.StepID,
		entry.Completed,
		entry.Note,
		entry.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to append progress log: %w", err)
	}

	return nil
}

// SaveComparison stores a comparison snapshot
func (s *Storage) SaveComparison(ctx context.Context, cmp *models.Comparison) error {
	query := s.rebind(`
		INSERT INTO comparisons (id, user_id, from_location, to_location, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)

	_, err := s.db.ExecContext(ctx, query,
		cmp.ID,
		cmp.UserID,
		cmp.FromLocation,
		cmp.ToLocation,
		string(cmp.Payload),
		cmp.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save comparison: %w", err)
	}

	return nil
}
