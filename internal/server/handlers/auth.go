package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iudanet/relocateme/internal/models"
	"github.com/iudanet/relocateme/internal/server/services"
	"github.com/iudanet/relocateme/pkg/api"
)

// resetAcknowledgement одинаков для существующих и несуществующих пользователей
const resetAcknowledgement = "If the username exists, a password reset code has been issued"

// AuthService - операции auth gate, нужные handlers
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*services.Token, error)
	RequestPasswordReset(ctx context.Context, username string) error
	CompletePasswordReset(ctx context.Context, username, code, newPassword string) error
}

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	responder
	auth AuthService
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, auth AuthService) *AuthHandler {
	return &AuthHandler{
		responder: responder{logger: logger},
		auth:      auth,
	}
}

// Register обрабатывает POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	user, err := h.auth.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "registration failed", slog.String("username", req.Username), slog.Any("error", err))
		h.sendServiceError(w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("username", user.Username),
		slog.String("user_id", user.ID))

	h.sendJSON(w, r, api.RegisterResponse{
		UserID:   user.ID,
		Username: user.Username,
		Message:  "User registered successfully",
	}, http.StatusCreated)
}

// Login обрабатывает POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	token, err := h.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed", slog.String("username", req.Username), slog.Any("error", err))
		h.sendServiceError(w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "user logged in successfully", slog.String("username", req.Username))

	h.sendJSON(w, r, api.TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   token.ExpiresIn,
	}, http.StatusOK)
}

// Me обрабатывает GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUser(r.Context())
	if !ok {
		h.sendServiceError(w, r, services.ErrAuthentication)
		return
	}

	steps := user.CompletedSteps
	if steps == nil {
		steps = []int{}
	}

	h.sendJSON(w, r, api.UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		IsActive:       user.IsActive,
		CreatedAt:      user.CreatedAt,
		CompletedSteps: steps,
	}, http.StatusOK)
}

// RequestPasswordReset обрабатывает POST /api/auth/reset-password
func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req api.PasswordResetRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if req.Username == "" {
		h.sendError(w, r, "username is required", http.StatusBadRequest)
		return
	}

	if err := h.auth.RequestPasswordReset(r.Context(), req.Username); err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	h.sendJSON(w, r, api.MessageResponse{Message: resetAcknowledgement}, http.StatusOK)
}

// CompletePasswordReset обрабатывает POST /api/auth/complete-password-reset
func (h *AuthHandler) CompletePasswordReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CompletePasswordResetRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if req.Username == "" || req.ResetCode == "" {
		h.sendError(w, r, "username and reset_code are required", http.StatusBadRequest)
		return
	}

	if err := h.auth.CompletePasswordReset(ctx, req.Username, req.ResetCode, req.NewPassword); err != nil {
		h.logger.WarnContext(ctx, "password reset failed", slog.String("username", req.Username), slog.Any("error", err))
		h.sendServiceError(w, r, err)
		return
	}

	h.sendJSON(w, r, api.MessageResponse{Message: "Password has been reset successfully"}, http.StatusOK)
}
