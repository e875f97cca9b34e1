// Package refdata holds the static reference datasets served by the API:
// location metrics, housing, job listings, visa routes, resource links.
//
// A Reference is built once at process start and passed to handlers.
// Accessors return copies, so callers may modify results freely.
package refdata

import (
	"errors"
	"slices"

	"github.com/google/uuid"
)

// ErrNotFound is returned for unknown lookup keys (location slug, visa type)
var ErrNotFound = errors.New("not found")

// Reference is the immutable reference dataset
type Reference struct {
	locations   map[string]Location
	housing     map[string]Housing
	jobs        []JobListing
	visas       []VisaRequirement
	checklist   []ChecklistItem
	resources   []ResourceCategory
	extensions  []Extension
	tips        []string
	opportunity JobOpportunities
}

// New builds the reference dataset
func New() *Reference {
	ext := make([]Extension, len(extensions))
	for i, e := range extensions {
		e.ID = uuid.New().String()
		e.Features = slices.Clone(e.Features)
		ext[i] = e
	}

	return &Reference{
		locations: map[string]Location{
			LocationPhoenix:      phoenix,
			LocationPeakDistrict: peakDistrict,
		},
		housing: map[string]Housing{
			LocationPhoenix:      cloneHousing(phoenixHousing),
			LocationPeakDistrict: cloneHousing(peakDistrictHousing),
		},
		jobs:        slices.Clone(jobListings),
		visas:       cloneVisas(visaRequirements),
		checklist:   slices.Clone(visaChecklist),
		resources:   cloneResources(resourceCategories),
		extensions:  ext,
		tips:        slices.Clone(relocationTips),
		opportunity: cloneOpportunities(jobOpportunities),
	}
}

// Location returns metrics for a location slug
func (r *Reference) Location(slug string) (Location, error) {
	loc, ok := r.locations[slug]
	if !ok {
		return Location{}, ErrNotFound
	}
	return loc, nil
}

// Housing returns housing market data for a location slug
func (r *Reference) Housing(slug string) (Housing, error) {
	h, ok := r.housing[slug]
	if !ok {
		return Housing{}, ErrNotFound
	}
	return cloneHousing(h), nil
}

// Compare builds the full comparison between two location slugs
func (r *Reference) Compare(fromSlug, toSlug string) (Comparison, error) {
	from, err := r.Location(fromSlug)
	if err != nil {
		return Comparison{}, err
	}
	to, err := r.Location(toSlug)
	if err != nil {
		return Comparison{}, err
	}

	return Comparison{
		FromLocation:      from,
		ToLocation:        to,
		ComparisonMetrics: Compare(from, to),
		RelocationTips:    slices.Clone(r.tips),
	}, nil
}

// JobFilter selects listings by exact category and job type; empty fields match everything
type JobFilter struct {
	Category string
	JobType  string
}

// JobListings returns listings matching the filter, in catalog order
func (r *Reference) JobListings(f JobFilter) []JobListing {
	out := make([]JobListing, 0, len(r.jobs))
	for _, j := range r.jobs {
		if f.Category != "" && j.Category != f.Category {
			continue
		}
		if f.JobType != "" && j.JobType != f.JobType {
			continue
		}
		out = append(out, j)
	}
	return out
}

// FeaturedJobs returns listings marked as featured
func (r *Reference) FeaturedJobs() []JobListing {
	out := make([]JobListing, 0)
	for _, j := range r.jobs {
		if j.Featured {
			out = append(out, j)
		}
	}
	return out
}

// JobCategories returns distinct listing categories in order of first appearance
func (r *Reference) JobCategories() []JobCategory {
	var out []JobCategory
	pos := make(map[string]int)
	for _, j := range r.jobs {
		i, ok := pos[j.Category]
		if !ok {
			i = len(out)
			pos[j.Category] = i
			out = append(out, JobCategory{Name: j.Category})
		}
		out[i].Count++
	}
	return out
}

// JobOpportunities returns the sector overview for both locations
func (r *Reference) JobOpportunities() JobOpportunities {
	return cloneOpportunities(r.opportunity)
}

// VisaRequirements returns all visa routes
func (r *Reference) VisaRequirements() []VisaRequirement {
	return cloneVisas(r.visas)
}

// VisaRequirement returns a single visa route by type slug
func (r *Reference) VisaRequirement(visaType string) (VisaRequirement, error) {
	for _, v := range r.visas {
		if v.Type == visaType {
			v.Requirements = slices.Clone(v.Requirements)
			return v, nil
		}
	}
	return VisaRequirement{}, ErrNotFound
}

// VisaChecklist returns the document checklist
func (r *Reference) VisaChecklist() []ChecklistItem {
	return slices.Clone(r.checklist)
}

// Resources returns the link directory
func (r *Reference) Resources() []ResourceCategory {
	return cloneResources(r.resources)
}

// Extensions returns downloadable browser extensions
func (r *Reference) Extensions() []Extension {
	out := make([]Extension, len(r.extensions))
	for i, e := range r.extensions {
		e.Features = slices.Clone(e.Features)
		out[i] = e
	}
	return out
}

func cloneHousing(h Housing) Housing {
	h.PopularAreas = slices.Clone(h.PopularAreas)
	h.HousingTypes = slices.Clone(h.HousingTypes)
	return h
}

func cloneVisas(in []VisaRequirement) []VisaRequirement {
	out := make([]VisaRequirement, len(in))
	for i, v := range in {
		v.Requirements = slices.Clone(v.Requirements)
		out[i] = v
	}
	return out
}

func cloneResources(in []ResourceCategory) []ResourceCategory {
	out := make([]ResourceCategory, len(in))
	for i, c := range in {
		c.Links = slices.Clone(c.Links)
		out[i] = c
	}
	return out
}

func cloneOpportunities(o JobOpportunities) JobOpportunities {
	o.PhoenixSectors = slices.Clone(o.PhoenixSectors)
	o.PeakDistrictSectors = slices.Clone(o.PeakDistrictSectors)
	o.RemoteWork = slices.Clone(o.RemoteWork)
	return o
}
