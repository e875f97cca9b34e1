package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iudanet/relocateme/internal/models"
	"github.com/iudanet/relocateme/internal/server/services"
	"github.com/iudanet/relocateme/internal/timeline"
	"github.com/iudanet/relocateme/pkg/api"
)

// ProgressService - операции трекера прогресса
type ProgressService interface {
	Toggle(ctx context.Context, user *models.User, stepID int, completed bool, note string) (*services.ToggleResult, error)
	Timeline(user *models.User) *api.TimelineResponse
	ByCategory(user *models.User) timeline.CategoryGroups
	Overview(user *models.User) *api.DashboardOverview
}

// TimelineHandler обрабатывает запросы таймлайна и дашборда
type TimelineHandler struct {
	responder
	progress ProgressService
}

// NewTimelineHandler создает handler таймлайна
func NewTimelineHandler(logger *slog.Logger, progress ProgressService) *TimelineHandler {
	return &TimelineHandler{
		responder: responder{logger: logger},
		progress:  progress,
	}
}

// withUser достает пользователя из контекста или отвечает 401
func (h *TimelineHandler) withUser(fn func(w http.ResponseWriter, r *http.Request, user *models.User)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		if !ok {
			h.sendServiceError(w, r, services.ErrAuthentication)
			return
		}
		fn(w, r, user)
	}
}

// Full обрабатывает GET /api/timeline/full
func (h *TimelineHandler) Full(w http.ResponseWriter, r *http.Request) {
	h.withUser(func(w http.ResponseWriter, r *http.Request, user *models.User) {
		h.sendJSON(w, r, h.progress.Timeline(user), http.StatusOK)
	})(w, r)
}

// ByCategory обрабатывает GET /api/timeline/by-category
func (h *TimelineHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	h.withUser(func(w http.ResponseWriter, r *http.Request, user *models.User) {
		h.sendJSON(w, r, h.progress.ByCategory(user), http.StatusOK)
	})(w, r)
}

// UpdateProgress обрабатывает POST /api/timeline/update-progress
func (h *TimelineHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	h.withUser(func(w http.ResponseWriter, r *http.Request, user *models.User) {
		var req api.UpdateProgressRequest
		if !h.decodeJSON(w, r, &req) {
			return
		}
		if req.StepID == nil {
			h.sendError(w, r, "step_id is required", http.StatusBadRequest)
			return
		}

		var note string
		if req.Notes != nil {
			note = *req.Notes
		}

		res, err := h.progress.Toggle(r.Context(), user, *req.StepID, req.Completed, note)
		if err != nil {
			h.sendServiceError(w, r, err)
			return
		}

		h.sendJSON(w, r, api.UpdateProgressResponse{
			Message:              "Progress updated successfully",
			StepID:               *req.StepID,
			Completed:            req.Completed,
			Changed:              res.Changed,
			CompletedSteps:       res.CompletedSteps,
			CompletionPercentage: res.CompletionPercentage,
			CurrentPhase:         res.CurrentPhase,
		}, http.StatusOK)
	})(w, r)
}

// Dashboard обрабатывает GET /api/dashboard/overview
func (h *TimelineHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.withUser(func(w http.ResponseWriter, r *http.Request, user *models.User) {
		h.sendJSON(w, r, h.progress.Overview(user), http.StatusOK)
	})(w, r)
}
