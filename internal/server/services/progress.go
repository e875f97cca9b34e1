package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/relocateme/internal/models"
	"github.com/iudanet/relocateme/internal/server/storage"
	"github.com/iudanet/relocateme/internal/timeline"
	"github.com/iudanet/relocateme/pkg/api"
)

// pendingOnDashboard - сколько готовых к старту шагов показывать на дашборде
const pendingOnDashboard = 5

// ProgressStore persists the completed set and the toggle journal
type ProgressStore interface {
	UpdateCompletedSteps(ctx context.Context, userID string, steps []int) error
	storage.ProgressLogStorage
}

// ToggleResult is the state after a toggle
type ToggleResult struct {
	CurrentPhase         string
	CompletedSteps       int
	CompletionPercentage float64
	Changed              bool
}

// ProgressService tracks completed steps per user and derives views from them
type ProgressService struct {
	store     ProgressStore
	catalog   *timeline.Catalog
	validator timeline.StepValidator
	logger    *slog.Logger
	now       func() time.Time
}

// NewProgressService создает трекер прогресса. nil validator accepts any step id.
func NewProgressService(logger *slog.Logger, store ProgressStore, catalog *timeline.Catalog, validator timeline.StepValidator) *ProgressService {
	if validator == nil {
		validator = timeline.AcceptAnyStep
	}
	return &ProgressService{
		store:     store,
		catalog:   catalog,
		validator: validator,
		logger:    logger,
		now:       time.Now,
	}
}

// Catalog returns the step catalog the service works with
func (s *ProgressService) Catalog() *timeline.Catalog {
	return s.catalog
}

// Toggle marks stepID as completed or not for the user.
// The set is written only when it changes; the journal entry is appended every time.
// On success user.CompletedSteps holds the new set.
func (s *ProgressService) Toggle(ctx context.Context, user *models.User, stepID int, completed bool, note string) (*ToggleResult, error) {
	if err := s.validator.ValidateStep(stepID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStep, err)
	}

	next, changed := timeline.Toggle(timeline.NewSet(user.CompletedSteps...), stepID, completed)
	if changed {
		if err := s.store.UpdateCompletedSteps(ctx, user.ID, next); err != nil {
			return nil, err
		}
	}

	entry := &models.ProgressLogEntry{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		StepID:    stepID,
		Completed: completed,
		Note:      note,
		CreatedAt: s.now(),
	}
	if err := s.store.AppendProgressLog(ctx, entry); err != nil {
		return nil, err
	}

	user.CompletedSteps = slices.Clone([]int(next))

	s.logger.InfoContext(ctx, "progress updated",
		slog.String("user_id", user.ID),
		slog.Int("step_id", stepID),
		slog.Bool("completed", completed),
		slog.Bool("changed", changed))

	return &ToggleResult{
		CurrentPhase:         timeline.CurrentPhase(next),
		CompletedSteps:       len(next),
		CompletionPercentage: timeline.CompletionPercentage(next, s.catalog.Total()),
		Changed:              changed,
	}, nil
}

// Timeline returns every step with the user's completion flag
func (s *ProgressService) Timeline(user *models.User) *api.TimelineResponse {
	set := timeline.NewSet(user.CompletedSteps...)
	return &api.TimelineResponse{
		Timeline:             timeline.Annotate(s.catalog, set),
		TotalSteps:           s.catalog.Total(),
		CompletedSteps:       len(set),
		CompletionPercentage: timeline.CompletionPercentage(set, s.catalog.Total()),
		CurrentPhase:         timeline.CurrentPhase(set),
	}
}

// ByCategory groups the steps by category
func (s *ProgressService) ByCategory(user *models.User) timeline.CategoryGroups {
	return timeline.GroupByCategory(s.catalog, timeline.NewSet(user.CompletedSteps...))
}

// Overview builds the dashboard summary
func (s *ProgressService) Overview(user *models.User) *api.DashboardOverview {
	set := timeline.NewSet(user.CompletedSteps...)

	done := make([]string, 0, len(set))
	remainingDays, remaining := 0, 0
	for _, step := range s.catalog.Steps() {
		if set.Contains(step.ID) {
			done = append(done, step.Title)
			continue
		}
		remaining++
		remainingDays += step.EstimatedDays
	}

	next := timeline.NextAvailable(s.catalog, set, pendingOnDashboard)
	pending := make([]string, 0, len(next))
	for _, step := range next {
		pending = append(pending, step.Title)
	}

	return &api.DashboardOverview{
		User: user.Username,
		RelocationProgress: api.RelocationProgress{
			CompletionPercentage: timeline.CompletionPercentage(set, s.catalog.Total()),
			CurrentPhase:         timeline.CurrentPhase(set),
			CompletedSteps:       done,
			PendingSteps:         pending,
		},
		QuickStats: api.QuickStats{
			DaysUntilMove:    remainingDays,
			StepsRemaining:   remaining,
			BudgetAllocated:  45000,
			PropertiesViewed: 8,
			ApplicationsSent: 3,
		},
		RecentActivity: slices.Clone(recentActivity),
	}
}

var recentActivity = []string{
	"Viewed property in Bakewell",
	"Updated cost comparison",
	"Bookmarked local schools",
	"Researched hiking trails",
}
