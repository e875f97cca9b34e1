package server

import (
	"log/slog"
	"net/http"
	"net/netip"
	"time"

	"github.com/iudanet/relocateme/internal/refdata"
	"github.com/iudanet/relocateme/internal/server/handlers"
	"github.com/iudanet/relocateme/internal/server/middleware"
	"github.com/iudanet/relocateme/internal/server/services"
)

// healthPath не логируется middleware
const healthPath = "/api/health"

// Deps - сервисы, которые router раздает handlers
type Deps struct {
	Auth       *services.AuthService
	Progress   *services.ProgressService
	Comparison *services.ComparisonService
	Reference  *refdata.Reference
	DB         handlers.Pinger
	Version    string
}

// RouterOptions настраивает middleware цепочку
type RouterOptions struct {
	CORSOrigins []string
	// TrustedProxies - peers, от которых принимаются X-Forwarded-For/X-Real-IP
	TrustedProxies []netip.Prefix
	// AuthRateLimit - запросов в RateWindow на IP для login/register/reset
	AuthRateLimit int
	RateWindow    time.Duration
}

// Router is the HTTP entry point of the API
type Router struct {
	handler http.Handler
	limiter *middleware.PathLimiter
}

// NewRouter регистрирует все маршруты /api и оборачивает их в
// recovery -> logging -> CORS -> rate limit.
func NewRouter(logger *slog.Logger, opts RouterOptions, deps Deps) *Router {
	if opts.RateWindow <= 0 {
		opts.RateWindow = time.Minute
	}

	authHandler := handlers.NewAuthHandler(logger, deps.Auth)
	timelineHandler := handlers.NewTimelineHandler(logger, deps.Progress)
	refHandler := handlers.NewReferenceHandler(logger, deps.Reference, deps.Comparison)
	healthHandler := handlers.NewHealthHandler(logger, deps.DB, deps.Version)

	bearer := middleware.AuthMiddleware(logger, deps.Auth)
	protected := func(h http.HandlerFunc) http.Handler {
		return bearer(h)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET "+healthPath, healthHandler.Health)

	// Auth gate
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("GET /api/auth/me", protected(authHandler.Me))
	mux.HandleFunc("POST /api/auth/reset-password", authHandler.RequestPasswordReset)
	mux.HandleFunc("POST /api/auth/complete-password-reset", authHandler.CompletePasswordReset)

	// Progress tracker
	mux.Handle("GET /api/timeline/full", protected(timelineHandler.Full))
	mux.Handle("GET /api/timeline/by-category", protected(timelineHandler.ByCategory))
	mux.Handle("POST /api/timeline/update-progress", protected(timelineHandler.UpdateProgress))
	mux.Handle("GET /api/dashboard/overview", protected(timelineHandler.Dashboard))

	// Reference data
	mux.HandleFunc("GET /api/locations/{slug}", refHandler.Location)
	mux.HandleFunc("GET /api/housing/{slug}", refHandler.Housing)
	mux.Handle("GET /api/comparison/phoenix-to-peak-district", protected(refHandler.Comparison))
	mux.HandleFunc("GET /api/jobs/listings", refHandler.JobListings)
	mux.HandleFunc("GET /api/jobs/featured", refHandler.FeaturedJobs)
	mux.HandleFunc("GET /api/jobs/categories", refHandler.JobCategories)
	mux.Handle("GET /api/jobs/opportunities", protected(refHandler.JobOpportunities))
	mux.HandleFunc("GET /api/visa/requirements", refHandler.VisaRequirements)
	mux.HandleFunc("GET /api/visa/requirements/{type}", refHandler.VisaRequirement)
	mux.HandleFunc("GET /api/visa/checklist", refHandler.VisaChecklist)
	mux.HandleFunc("GET /api/resources/all", refHandler.Resources)
	mux.HandleFunc("GET /api/chrome-extensions", refHandler.Extensions)

	limiter := middleware.NewPathLimiter(logger, opts.TrustedProxies,
		middleware.PathRateLimit{Path: "/api/auth/login", Rate: opts.AuthRateLimit, Window: opts.RateWindow},
		middleware.PathRateLimit{Path: "/api/auth/register", Rate: opts.AuthRateLimit, Window: opts.RateWindow},
		middleware.PathRateLimit{Path: "/api/auth/reset-password", Rate: opts.AuthRateLimit, Window: opts.RateWindow},
		middleware.PathRateLimit{Path: "/api/auth/complete-password-reset", Rate: opts.AuthRateLimit, Window: opts.RateWindow},
	)

	var h http.Handler = mux
	h = limiter.Middleware(h)
	h = middleware.CORSMiddleware(opts.CORSOrigins)(h)
	h = middleware.LoggingMiddleware(logger, healthPath)(h)
	h = middleware.RecoveryMiddleware(logger)(h)

	return &Router{handler: h, limiter: limiter}
}

// ServeHTTP implements http.Handler
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.handler.ServeHTTP(w, r)
}

// Close останавливает фоновые горутины rate limiter
func (rt *Router) Close() {
	rt.limiter.Stop()
}
