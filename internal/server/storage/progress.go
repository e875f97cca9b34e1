package storage

import (
	"context"

	"github.com/iudanet/relocateme/internal/models"
)

// ProgressLogStorage is the append-only journal of step toggles
type ProgressLogStorage interface {
	AppendProgressLog(ctx context.Context, entry *models.ProgressLogEntry) error
}

// ComparisonStorage keeps location comparison snapshots
type ComparisonStorage interface {
	SaveComparison(ctx context.Context, cmp *models.Comparison) error
}
