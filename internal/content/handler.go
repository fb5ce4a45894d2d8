// Package content serves the CRUD endpoints shared by every editorial entity
// kind (events, projects, publications, blogs, resources, leaderboard).
package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cyberhub/community-platform/backend/internal/metrics"
	"github.com/cyberhub/community-platform/backend/internal/respond"
	"github.com/cyberhub/community-platform/backend/internal/validation"
)

// Repository is the store surface one handler needs. *store.Repo satisfies
// it for every kind.
type Repository[T, I, P any] interface {
	Filter(keep func(T) bool) []T
	Get(id string) (T, bool)
	Create(in I) T
	Update(id string, p P) (T, bool)
	Delete(id string) bool
}

// Kind names an entity kind in messages and metrics.
type Kind struct {
	Name   string // "event", as in "Invalid event data"
	Title  string // "Event", as in "Event not found"
	Plural string // "events", the metrics label
}

// Handler holds the CRUD handlers for one kind.
type Handler[T, I, P any] struct {
	kind     Kind
	repo     Repository[T, I, P]
	validate *validation.Validator

	// filter builds a List predicate from query parameters. nil lists all.
	filter func(r *http.Request) func(T) bool
}

func NewHandler[T, I, P any](kind Kind, repo Repository[T, I, P], v *validation.Validator) *Handler[T, I, P] {
	return &Handler[T, I, P]{kind: kind, repo: repo, validate: v}
}

// WithFilter sets the query-driven List predicate.
func (h *Handler[T, I, P]) WithFilter(f func(r *http.Request) func(T) bool) *Handler[T, I, P] {
	h.filter = f
	return h
}

// List returns every record of the kind, filtered when a filter is set.
func (h *Handler[T, I, P]) List(w http.ResponseWriter, r *http.Request) {
	var keep func(T) bool
	if h.filter != nil {
		keep = h.filter(r)
	}
	respond.JSON(w, r, http.StatusOK, h.repo.Filter(keep))
}

// Get returns a single record.
func (h *Handler[T, I, P]) Get(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.repo.Get(chi.URLParam(r, "id"))
	if !ok {
		h.notFound(w, r)
		return
	}
	respond.JSON(w, r, http.StatusOK, rec)
}

// Create validates the body against the insertable shape and stores it.
func (h *Handler[T, I, P]) Create(w http.ResponseWriter, r *http.Request) {
	var in I
	if err := h.validate.Decode(r.Body, &in); err != nil {
		respond.Invalid(w, r, "Invalid "+h.kind.Name+" data", err)
		return
	}
	rec := h.repo.Create(in)
	metrics.ContentMutations.WithLabelValues(h.kind.Plural, "create").Inc()
	respond.JSON(w, r, http.StatusCreated, rec)
}

// Update validates the body against the partial shape and merges it.
func (h *Handler[T, I, P]) Update(w http.ResponseWriter, r *http.Request) {
	var p P
	if err := h.validate.Decode(r.Body, &p); err != nil {
		respond.Invalid(w, r, "Invalid "+h.kind.Name+" data", err)
		return
	}
	rec, ok := h.repo.Update(chi.URLParam(r, "id"), p)
	if !ok {
		h.notFound(w, r)
		return
	}
	metrics.ContentMutations.WithLabelValues(h.kind.Plural, "update").Inc()
	respond.JSON(w, r, http.StatusOK, rec)
}

// Delete removes a record.
func (h *Handler[T, I, P]) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.repo.Delete(chi.URLParam(r, "id")) {
		h.notFound(w, r)
		return
	}
	metrics.ContentMutations.WithLabelValues(h.kind.Plural, "delete").Inc()
	respond.NoContent(w, r)
}

func (h *Handler[T, I, P]) notFound(w http.ResponseWriter, r *http.Request) {
	respond.Error(w, r, http.StatusNotFound, h.kind.Title+" not found")
}
