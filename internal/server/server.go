// Package server assembles the HTTP router: middleware stack, CORS, auth
// routes and one CRUD route group per content kind.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cyberhub/community-platform/backend/internal/auth"
	"github.com/cyberhub/community-platform/backend/internal/content"
	"github.com/cyberhub/community-platform/backend/internal/middleware"
	"github.com/cyberhub/community-platform/backend/internal/models"
	"github.com/cyberhub/community-platform/backend/internal/store"
	"github.com/cyberhub/community-platform/backend/internal/validation"
)

// Deps are the collaborators the router wires together.
type Deps struct {
	Store       *store.Store
	Sessions    auth.SessionStore
	Credentials *auth.Credentials
	Validator   *validation.Validator
	Auth        auth.HandlerConfig

	AllowedOrigins []string
	// AccessLog enables chi's request logger; tests turn it off.
	AccessLog bool
}

// crud is the handler set mounted for an editorial kind.
type crud interface {
	List(http.ResponseWriter, *http.Request)
	Get(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

// New returns the API router.
func New(d Deps) http.Handler {
	v := d.Validator
	if v == nil {
		v = validation.New()
	}
	st := d.Store

	requireAuth := middleware.RequireAuth(d.Sessions, st.Users)
	requireAdmin := middleware.RequireAdmin(d.Sessions, st.Users)
	authHandler := auth.NewHandler(d.Credentials, d.Sessions, v, d.Auth)

	events := content.NewHandler[models.Event, models.EventInput, models.EventPatch](
		content.Kind{Name: "event", Title: "Event", Plural: "events"}, st.Events, v)
	projects := content.NewHandler[models.Project, models.ProjectInput, models.ProjectPatch](
		content.Kind{Name: "project", Title: "Project", Plural: "projects"}, st.Projects, v)
	publications := content.NewHandler[models.Publication, models.PublicationInput, models.PublicationPatch](
		content.Kind{Name: "publication", Title: "Publication", Plural: "publications"}, st.Publications, v)
	blogs := content.NewHandler[models.Blog, models.BlogInput, models.BlogPatch](
		content.Kind{Name: "blog", Title: "Blog", Plural: "blogs"}, st.Blogs, v)
	resources := content.NewHandler[models.Resource, models.ResourceInput, models.ResourcePatch](
		content.Kind{Name: "resource", Title: "Resource", Plural: "resources"}, st.Resources, v).
		WithFilter(resourceTypeFilter)
	leaderboard := content.NewHandler[models.LeaderboardEntry, models.LeaderboardInput, models.LeaderboardPatch](
		content.Kind{Name: "leaderboard", Title: "Leaderboard entry", Plural: "leaderboard"}, st.Leaderboard, v)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	if d.AccessLog {
		r.Use(chimw.Logger)
	}
	r.Use(chimw.Recoverer)
	r.Use(middleware.Instrument)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.With(requireAuth).Get("/user", authHandler.Me)
	})

	mountCRUD(r, "/api/events", events, requireAdmin)
	mountCRUD(r, "/api/projects", projects, requireAdmin)
	mountCRUD(r, "/api/publications", publications, requireAdmin)
	mountCRUD(r, "/api/blogs", blogs, requireAdmin)
	mountCRUD(r, "/api/resources", resources, requireAdmin)

	// Leaderboard entries are participation records: anyone may add one,
	// nobody may edit or remove one.
	r.Route("/api/leaderboard", func(r chi.Router) {
		r.Get("/", leaderboard.List)
		r.Post("/", leaderboard.Create)
	})

	return r
}

func mountCRUD(r chi.Router, path string, h crud, admin func(http.Handler) http.Handler) {
	r.Route(path, func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.With(admin).Post("/", h.Create)
		r.With(admin).Put("/{id}", h.Update)
		r.With(admin).Delete("/{id}", h.Delete)
	})
}

func resourceTypeFilter(r *http.Request) func(models.Resource) bool {
	typ := r.URL.Query().Get("type")
	if typ == "" {
		return nil
	}
	return func(res models.Resource) bool { return res.Type == typ }
}
