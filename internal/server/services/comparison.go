package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/relocateme/internal/models"
	"github.com/iudanet/relocateme/internal/refdata"
	"github.com/iudanet/relocateme/internal/server/storage"
)

// ComparisonService computes location comparisons and keeps a snapshot per request
type ComparisonService struct {
	ref   *refdata.Reference
	store storage.ComparisonStorage
	now   func() time.Time
}

// NewComparisonService создает сервис сравнения локаций
func NewComparisonService(ref *refdata.Reference, store storage.ComparisonStorage) *ComparisonService {
	return &ComparisonService{ref: ref, store: store, now: time.Now}
}

// Compare builds the comparison between two location slugs and stores it for the user
func (s *ComparisonService) Compare(ctx context.Context, user *models.User, fromSlug, toSlug string) (*refdata.Comparison, error) {
	cmp, err := s.ref.Compare(fromSlug, toSlug)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(cmp)
	if err != nil {
		return nil, fmt.Errorf("failed to encode comparison: %w", err)
	}

	snapshot := &models.Comparison{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		FromLocation: cmp.FromLocation.Name,
		ToLocation:   cmp.ToLocation.Name,
		Payload:      payload,
		CreatedAt:    s.now(),
	}
	if err := s.store.SaveComparison(ctx, snapshot); err != nil {
		return nil, err
	}

	return &cmp, nil
}
