package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/relocateme/internal/crypto"
	"github.com/iudanet/relocateme/internal/models"
	"github.com/iudanet/relocateme/internal/server/jwt"
	"github.com/iudanet/relocateme/internal/server/storage"
	"github.com/iudanet/relocateme/internal/validation"
)

// DefaultResetTTL is the lifetime of a password reset code
const DefaultResetTTL = time.Hour

// Token is an issued access token
type Token struct {
	AccessToken string
	ExpiresIn   int64 // seconds
}

// AuthService issues and verifies bearer tokens and runs the password reset flow
type AuthService struct {
	users    storage.UserStorage
	resets   storage.ResetStorage
	tokens   *jwt.Service
	codes    crypto.ResetCodeGenerator
	logger   *slog.Logger
	now      func() time.Time
	resetTTL time.Duration
}

// NewAuthService создает сервис аутентификации
func NewAuthService(
	logger *slog.Logger,
	users storage.UserStorage,
	resets storage.ResetStorage,
	tokens *jwt.Service,
	codes crypto.ResetCodeGenerator,
	resetTTL time.Duration,
) *AuthService {
	if resetTTL <= 0 {
		resetTTL = DefaultResetTTL
	}
	return &AuthService{
		users:    users,
		resets:   resets,
		tokens:   tokens,
		codes:    codes,
		logger:   logger,
		now:      time.Now,
		resetTTL: resetTTL,
	}
}

// Register validates input and creates an active user with no completed steps
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if err := validation.Username(username); err != nil {
		return nil, err
	}
	if err := validation.Email(email); err != nil {
		return nil, err
	}
	if err := validation.Password(password); err != nil {
		return nil, err
	}

	return s.createUser(ctx, username, email, password)
}

// EnsureUser creates the user if the username is free. Existing users are left untouched.
// Returns true when a user was created.
func (s *AuthService) EnsureUser(ctx context.Context, username, email, password string) (bool, error) {
	_, err := s.users.GetUserByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return false, fmt.Errorf("failed to look up user %s: %w", username, err)
	}

	if _, err := s.createUser(ctx, username, email, password); err != nil {
		if errors.Is(err, ErrUserExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *AuthService) createUser(ctx context.Context, username, email, password string) (*models.User, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:             uuid.New().String(),
		Username:       username,
		Email:          email,
		PasswordHash:   hash,
		IsActive:       true,
		CompletedSteps: []int{},
		CreatedAt:      s.now(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login checks the password and issues an access token.
// Unknown username and wrong password both yield ErrAuthentication.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Token, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrAuthentication
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := crypto.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			return nil, ErrAuthentication
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrAuthentication
	}

	token, expiresIn, err := s.tokens.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &Token{AccessToken: token, ExpiresIn: expiresIn}, nil
}

// Authenticate verifies the token and resolves the user it was issued to
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	user, err := s.users.GetUserByUsername(ctx, claims.Username())
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrAuthentication
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.IsActive {
		return nil, ErrAuthentication
	}

	return user, nil
}

// RequestPasswordReset stores a reset code when the username exists.
// The result is the same for unknown usernames so callers cannot probe accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, username string) error {
	if _, err := s.users.GetUserByUsername(ctx, username); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.logger.InfoContext(ctx, "password reset requested for unknown user")
			return nil
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	code, err := s.codes.NewResetCode()
	if err != nil {
		return err
	}

	now := s.now()
	reset := &models.PasswordReset{
		Username:  username,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(s.resetTTL),
	}

	if err := s.resets.SaveReset(ctx, reset); err != nil {
		return err
	}

	attrs := []any{slog.String("username", username), slog.Time("expires_at", reset.ExpiresAt)}
	// случайный код некуда доставить кроме лога сервера
	if _, static := s.codes.(crypto.StaticResetCode); !static {
		attrs = append(attrs, slog.String("reset_code", code))
	}
	s.logger.InfoContext(ctx, "password reset code issued", attrs...)

	return nil
}

// CompletePasswordReset consumes a reset code and sets a new password.
// An expired request is deleted and reported as ErrResetExpired.
func (s *AuthService) CompletePasswordReset(ctx context.Context, username, code, newPassword string) error {
	reset, err := s.resets.GetReset(ctx, username, code)
	if err != nil {
		if errors.Is(err, storage.ErrResetNotFound) {
			return ErrInvalidResetCode
		}
		return err
	}

	if reset.Expired(s.now()) {
		if err := s.resets.DeleteReset(ctx, username); err != nil {
			return err
		}
		return ErrResetExpired
	}

	if err := validation.Password(newPassword); err != nil {
		return err
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			_ = s.resets.DeleteReset(ctx, username)
			return ErrInvalidResetCode
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	hash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return err
	}

	if err := s.resets.DeleteReset(ctx, username); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "password reset completed", slog.String("username", username))
	return nil
}
