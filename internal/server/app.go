// Package server собирает Relocate Me API: хранилище, сервисы, router
// и HTTP сервер с graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/iudanet/relocateme/internal/crypto"
	"github.com/iudanet/relocateme/internal/refdata"
	"github.com/iudanet/relocateme/internal/server/config"
	"github.com/iudanet/relocateme/internal/server/jwt"
	"github.com/iudanet/relocateme/internal/server/services"
	"github.com/iudanet/relocateme/internal/server/storage/sqlstore"
	"github.com/iudanet/relocateme/internal/timeline"
)

// App owns the storage, the router and the HTTP server
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *sqlstore.Storage
	router *Router
	server *http.Server
}

// NewApp открывает хранилище, чистит просроченные reset коды,
// создает пользователя по умолчанию и собирает router.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger, version string) (*App, error) {
	trusted, err := cfg.TrustedProxyPrefixes()
	if err != nil {
		return nil, err
	}

	if cfg.UsesDefaultSecret() {
		logger.WarnContext(ctx, "JWT secret is the built-in default, set RELOCATE_JWT_SECRET or -s before exposing the server")
	}

	store, err := sqlstore.New(ctx, cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if n, err := store.DeleteExpiredResets(ctx, time.Now()); err != nil {
		logger.WarnContext(ctx, "failed to sweep expired reset codes", slog.Any("error", err))
	} else if n > 0 {
		logger.InfoContext(ctx, "expired reset codes removed", slog.Int("count", n))
	}

	var codes crypto.ResetCodeGenerator = crypto.StaticResetCode(crypto.LegacyResetCode)
	if cfg.RandomResetCode {
		codes = crypto.RandomResetCode{}
	}

	catalog := timeline.DefaultCatalog()
	var validator timeline.StepValidator = timeline.AcceptAnyStep
	if cfg.StrictSteps {
		validator = timeline.KnownStepsOnly(catalog)
	}

	ref := refdata.New()
	auth := services.NewAuthService(logger, store, store,
		jwt.NewService(cfg.JWTSecret, cfg.AccessTokenTTL), codes, cfg.ResetCodeTTL)

	if cfg.SeedUsername != "" {
		created, err := auth.EnsureUser(ctx, cfg.SeedUsername, cfg.SeedEmail, cfg.SeedPassword)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to create default user: %w", err)
		}
		if created {
			logger.InfoContext(ctx, "default user created", slog.String("username", cfg.SeedUsername))
		}
	}

	router := NewRouter(logger, RouterOptions{
		CORSOrigins:    cfg.CORSOrigins,
		TrustedProxies: trusted,
		AuthRateLimit:  cfg.LoginRateLimit,
		RateWindow:     time.Minute,
	}, Deps{
		Auth:       auth,
		Progress:   services.NewProgressService(logger, store, catalog, validator),
		Comparison: services.NewComparisonService(ref, store),
		Reference:  ref,
		DB:         store,
		Version:    version,
	})

	return &App{
		cfg:    cfg,
		logger: logger,
		store:  store,
		router: router,
		server: &http.Server{
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       2 * time.Minute,
		},
	}, nil
}

// Handler returns the fully wrapped API handler
func (app *App) Handler() http.Handler {
	return app.router
}

// Run слушает cfg.Addr до отмены ctx, затем выполняет graceful shutdown
func (app *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", app.cfg.Addr, err)
	}
	return app.Serve(ctx, ln)
}

// Serve обслуживает запросы на ln до отмены ctx
func (app *App) Serve(ctx context.Context, ln net.Listener) error {
	app.logger.InfoContext(ctx, "starting server", slog.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() {
		if err := app.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	app.logger.InfoContext(ctx, "shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownTimeout)
	defer cancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	app.logger.InfoContext(shutdownCtx, "server stopped")
	return nil
}

// Close освобождает router и хранилище
func (app *App) Close() error {
	app.router.Close()
	return app.store.Close()
}
