package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iudanet/relocateme/internal/models"
	"github.com/iudanet/relocateme/internal/refdata"
	"github.com/iudanet/relocateme/internal/server/services"
)

// Comparer computes and records a location comparison for a user
type Comparer interface {
	Compare(ctx context.Context, user *models.User, fromSlug, toSlug string) (*refdata.Comparison, error)
}

// ReferenceHandler отдает статические справочные данные
type ReferenceHandler struct {
	responder
	ref      *refdata.Reference
	comparer Comparer
}

// NewReferenceHandler создает handler справочных данных
func NewReferenceHandler(logger *slog.Logger, ref *refdata.Reference, comparer Comparer) *ReferenceHandler {
	return &ReferenceHandler{
		responder: responder{logger: logger},
		ref:       ref,
		comparer:  comparer,
	}
}

// Location обрабатывает GET /api/locations/{slug}
func (h *ReferenceHandler) Location(w http.ResponseWriter, r *http.Request) {
	loc, err := h.ref.Location(r.PathValue("slug"))
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}
	h.sendJSON(w, r, loc, http.StatusOK)
}

// Housing обрабатывает GET /api/housing/{slug}
func (h *ReferenceHandler) Housing(w http.ResponseWriter, r *http.Request) {
	housing, err := h.ref.Housing(r.PathValue("slug"))
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}
	h.sendJSON(w, r, housing, http.StatusOK)
}

// Comparison обрабатывает GET /api/comparison/phoenix-to-peak-district
// Результат сохраняется как снимок для текущего пользователя
func (h *ReferenceHandler) Comparison(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUser(r.Context())
	if !ok {
		h.sendServiceError(w, r, services.ErrAuthentication)
		return
	}

	cmp, err := h.comparer.Compare(r.Context(), user, refdata.LocationPhoenix, refdata.LocationPeakDistrict)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}
	h.sendJSON(w, r, cmp, http.StatusOK)
}

// JobListings обрабатывает GET /api/jobs/listings?category=&job_type=
func (h *ReferenceHandler) JobListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := refdata.JobFilter{
		Category: q.Get("category"),
		JobType:  q.Get("job_type"),
	}
	h.sendJSON(w, r, h.ref.JobListings(filter), http.StatusOK)
}

// FeaturedJobs обрабатывает GET /api/jobs/featured
func (h *ReferenceHandler) FeaturedJobs(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, r, h.ref.FeaturedJobs(), http.StatusOK)
}

// JobCategories обрабатывает GET /api/jobs/categories
func (h *ReferenceHandler) JobCategories(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, r, h.ref.JobCategories(), http.StatusOK)
}

// JobOpportunities обрабатывает GET /api/jobs/opportunities
func (h *ReferenceHandler) JobOpportunities(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, r, h.ref.JobOpportunities(), http.StatusOK)
}

// VisaRequirements обрабатывает GET /api/visa/requirements
func (h *ReferenceHandler) VisaRequirements(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, r, h.ref.VisaRequirements(), http.StatusOK)
}

// VisaRequirement обрабатывает GET /api/visa/requirements/{type}
func (h *ReferenceHandler) VisaRequirement(w http.ResponseWriter, r *http.Request) {
	visa, err := h.ref.VisaRequirement(r.PathValue("type"))
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}
	h.sendJSON(w, r, visa, http.StatusOK)
}

// VisaChecklist обрабатывает GET /api/visa/checklist
func (h *ReferenceHandler) VisaChecklist(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, r, h.ref.VisaChecklist(), http.StatusOK)
}

// Resources обрабатывает GET /api/resources/all
func (h *ReferenceHandler) Resources(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, r, h.ref.Resources(), http.StatusOK)
}

// Extensions обрабатывает GET /api/chrome-extensions
func (h *ReferenceHandler) Extensions(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, r, h.ref.Extensions(), http.StatusOK)
}
