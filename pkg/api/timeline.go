package api

import "github.com/iudanet/relocateme/internal/timeline"

// TimelineResponse - полный список шагов с отметками выполнения
type TimelineResponse struct {
	CurrentPhase         string                   `json:"current_phase"`
	Timeline             []timeline.AnnotatedStep `json:"timeline"`
	TotalSteps           int                      `json:"total_steps"`
	CompletedSteps       int                      `json:"completed_steps"`
	CompletionPercentage float64                  `json:"completion_percentage"`
}

// ByCategoryResponse is an object keyed by category name, in catalog order
type ByCategoryResponse = timeline.CategoryGroups

// UpdateProgressRequest переключает выполнение одного шага.
// StepID is required; Notes is optional.
type UpdateProgressRequest struct {
	StepID    *int    `json:"step_id"`
	Notes     *string `json:"notes,omitempty"`
	Completed bool    `json:"completed"`
}

// UpdateProgressResponse returns the progress after a toggle
type UpdateProgressResponse struct {
	Message              string  `json:"message"`
	CurrentPhase         string  `json:"current_phase"`
	StepID               int     `json:"step_id"`
	CompletedSteps       int     `json:"completed_steps"`
	CompletionPercentage float64 `json:"completion_percentage"`
	Completed            bool    `json:"completed"`
	Changed              bool    `json:"changed"`
}

// DashboardOverview - сводка для главного экрана
type DashboardOverview struct {
	User               string             `json:"user"`
	RecentActivity     []string           `json:"recent_activity"`
	RelocationProgress RelocationProgress `json:"relocation_progress"`
	QuickStats         QuickStats         `json:"quick_stats"`
}

// RelocationProgress summarises the caller's completed set
type RelocationProgress struct {
	CurrentPhase         string   `json:"current_phase"`
	CompletedSteps       []string `json:"completed_steps"` // titles
	PendingSteps         []string `json:"pending_steps"`   // titles of steps ready to start
	CompletionPercentage float64  `json:"completion_percentage"`
}

// QuickStats - короткие цифры для дашборда
type QuickStats struct {
	DaysUntilMove    int `json:"days_until_move"`
	StepsRemaining   int `json:"steps_remaining"`
	BudgetAllocated  int `json:"budget_allocated"`
	PropertiesViewed int `json:"properties_viewed"`
	ApplicationsSent int `json:"applications_sent"`
}
