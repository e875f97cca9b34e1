// Package cli реализует команды клиента relocate
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/relocateme/internal/client/api"
	"github.com/iudanet/relocateme/internal/client/iocli"
	"github.com/iudanet/relocateme/internal/client/storage"
	"github.com/iudanet/relocateme/internal/refdata"
	"github.com/iudanet/relocateme/internal/timeline"
	pkgapi "github.com/iudanet/relocateme/pkg/api"
)

var (
	errNotAuthenticated = errors.New("not authenticated. Please run 'relocate login' first")
	errSessionExpired   = errors.New("session expired. Please run 'relocate login' again")
)

// APIClient - операции сервера, которые использует CLI (*api.Client)
type APIClient interface {
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error)
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
	Me(ctx context.Context, token string) (*pkgapi.UserResponse, error)
	RequestPasswordReset(ctx context.Context, req pkgapi.PasswordResetRequest) (*pkgapi.MessageResponse, error)
	CompletePasswordReset(ctx context.Context, req pkgapi.CompletePasswordResetRequest) (*pkgapi.MessageResponse, error)
	Timeline(ctx context.Context, token string) (*pkgapi.TimelineResponse, error)
	TimelineByCategory(ctx context.Context, token string) (timeline.CategoryGroups, error)
	UpdateProgress(ctx context.Context, token string, req pkgapi.UpdateProgressRequest) (*pkgapi.UpdateProgressResponse, error)
	Dashboard(ctx context.Context, token string) (*pkgapi.DashboardOverview, error)
	Comparison(ctx context.Context, token string) (*refdata.Comparison, error)
	JobListings(ctx context.Context, category, jobType string) ([]refdata.JobListing, error)
	VisaRequirements(ctx context.Context) ([]refdata.VisaRequirement, error)
	VisaRequirement(ctx context.Context, visaType string) (*refdata.VisaRequirement, error)
	VisaChecklist(ctx context.Context) ([]refdata.ChecklistItem, error)
	Resources(ctx context.Context) ([]refdata.ResourceCategory, error)
}

var _ APIClient = (*api.Client)(nil)

// Cli выполняет команды клиента
type Cli struct {
	io      iocli.IO
	api     APIClient
	session storage.AuthStorage
	now     func() time.Time
}

// New создает CLI
func New(io iocli.IO, apiClient APIClient, session storage.AuthStorage) *Cli {
	return &Cli{
		io:      io,
		api:     apiClient,
		session: session,
		now:     time.Now,
	}
}

// Run выполняет команду с аргументами
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "me":
		return c.runMe(ctx)
	case "reset-password":
		return c.runResetPassword(ctx)
	case "complete-reset":
		return c.runCompleteReset(ctx)
	case "timeline":
		return c.runTimeline(ctx)
	case "categories":
		return c.runCategories(ctx)
	case "done":
		return c.runToggle(ctx, args, true)
	case "undo":
		return c.runToggle(ctx, args, false)
	case "dashboard":
		return c.runDashboard(ctx)
	case "compare":
		return c.runCompare(ctx)
	case "jobs":
		return c.runJobs(ctx, args)
	case "visa":
		return c.runVisa(ctx, args)
	case "checklist":
		return c.runChecklist(ctx)
	case "resources":
		return c.runResources(ctx)
	case "help":
		PrintUsage(c.io)
		return nil
	default:
		PrintUsage(c.io)
		return fmt.Errorf("unknown command: %s", command)
	}
}

// token возвращает сохраненный bearer токен, если сессия действительна
func (c *Cli) token(ctx context.Context) (string, error) {
	auth, err := c.session.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return "", errNotAuthenticated
		}
		return "", fmt.Errorf("failed to get auth data: %w", err)
	}
	if auth.Expired(c.now()) {
		return "", errSessionExpired
	}
	return auth.AccessToken, nil
}

// authError заменяет 401 от сервера понятным сообщением
func authError(err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		return errSessionExpired
	}
	return err
}

// PrintUsage печатает справку
func PrintUsage(io iocli.IO) {
	io.Println("Relocate Me Client")
	io.Println()
	io.Println("Usage:")
	io.Println("  relocate [OPTIONS] COMMAND [ARGS]")
	io.Println()
	io.Println("Options:")
	io.Println("  -version        Show version information")
	io.Println("  -server URL     Server URL (default: http://localhost:8080)")
	io.Println("  -db PATH        Path to local session database (default: relocate-client.db)")
	io.Println()
	io.Println("Commands:")
	io.Println("  register                  Register new user")
	io.Println("  login                     Login to server")
	io.Println("  logout                    Delete local session")
	io.Println("  status                    Show authentication status")
	io.Println("  me                        Show your account")
	io.Println("  reset-password            Request a password reset code")
	io.Println("  complete-reset            Set a new password with a reset code")
	io.Println("  timeline                  Show all relocation steps")
	io.Println("  categories                Show progress per category")
	io.Println("  done <id> [note]          Mark a step as completed")
	io.Println("  undo <id> [note]          Mark a step as not completed")
	io.Println("  dashboard                 Show relocation overview")
	io.Println("  compare                   Compare Phoenix and Peak District")
	io.Println("  jobs [category] [type]    List job openings")
	io.Println("  visa [type]               Show visa routes")
	io.Println("  checklist                 Show visa document checklist")
	io.Println("  resources                 Show useful links")
	io.Println()
	io.Println("Examples:")
	io.Println("  relocate login")
	io.Println("  relocate done 4 \"Booked visa appointment\"")
	io.Println("  relocate jobs Technology full-time")
	io.Println("  relocate -server https://relocate.example.com timeline")
}
