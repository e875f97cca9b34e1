package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/relocateme/internal/client/storage"
	"github.com/iudanet/relocateme/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	email, err := c.io.ReadInput("Email (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password (min 8 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	resp, err := c.api.Register(ctx, api.RegisterRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("User ID: %s\n", resp.UserID)
	c.io.Printf("Username: %s\n", resp.Username)
	c.io.Println()
	c.io.Println("Please run 'relocate login' to start tracking your move.")

	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	tok, err := c.api.Login(ctx, api.LoginRequest{Username: username, Password: password})
	if err != nil {
		return err
	}

	auth := &storage.AuthData{
		Username:    username,
		AccessToken: tok.AccessToken,
		ExpiresAt:   c.now().Unix() + tok.ExpiresIn,
	}
	if err := c.session.SaveAuth(ctx, auth); err != nil {
		return fmt.Errorf("failed to save auth data: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", username)
	c.io.Printf("Access token expires in: %s\n", time.Duration(tok.ExpiresIn)*time.Second)

	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	if err := c.session.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			c.io.Println("You are not logged in.")
			return nil
		}
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session has been deleted.")

	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	auth, err := c.session.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			c.io.Println("Status: Not authenticated")
			c.io.Println()
			c.io.Println("Run 'relocate login' to authenticate.")
			return nil
		}
		return fmt.Errorf("failed to get auth data: %w", err)
	}

	expiresAt := time.Unix(auth.ExpiresAt, 0)
	remaining := expiresAt.Sub(c.now())

	c.io.Printf("Username: %s\n", auth.Username)
	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))

	if remaining > 0 {
		c.io.Println("Status: Authenticated")
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("Status: Session expired")
		c.io.Println("⚠️  Token has expired. Please login again.")
	}

	return nil
}

func (c *Cli) runMe(ctx context.Context) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	user, err := c.api.Me(ctx, token)
	if err != nil {
		return authError(err)
	}

	c.io.Println("=== Account ===")
	c.io.Printf("ID:         %s\n", user.ID)
	c.io.Printf("Username:   %s\n", user.Username)
	if user.Email != "" {
		c.io.Printf("Email:      %s\n", user.Email)
	}
	c.io.Printf("Active:     %t\n", user.IsActive)
	c.io.Printf("Created:    %s\n", user.CreatedAt.Format(time.RFC3339))
	c.io.Printf("Completed:  %d step(s)\n", len(user.CompletedSteps))

	return nil
}

func (c *Cli) runResetPassword(ctx context.Context) error {
	c.io.Println("=== Password Reset ===")

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	resp, err := c.api.RequestPasswordReset(ctx, api.PasswordResetRequest{Username: username})
	if err != nil {
		return err
	}

	c.io.Println(resp.Message)
	c.io.Println("Run 'relocate complete-reset' with the code you received.")

	return nil
}

func (c *Cli) runCompleteReset(ctx context.Context) error {
	c.io.Println("=== Complete Password Reset ===")

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	code, err := c.io.ReadInput("Reset code: ")
	if err != nil {
		return fmt.Errorf("failed to read reset code: %w", err)
	}

	password, err := c.io.ReadPassword("New password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	resp, err := c.api.CompletePasswordReset(ctx, api.CompletePasswordResetRequest{
		Username:    username,
		ResetCode:   code,
		NewPassword: password,
	})
	if err != nil {
		return err
	}

	c.io.Println("✓ " + resp.Message)
	c.io.Println("Please run 'relocate login' with your new password.")

	return nil
}
