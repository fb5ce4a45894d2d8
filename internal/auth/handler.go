package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/cyberhub/community-platform/backend/internal/metrics"
	"github.com/cyberhub/community-platform/backend/internal/models"
	"github.com/cyberhub/community-platform/backend/internal/respond"
	"github.com/cyberhub/community-platform/backend/internal/validation"
)

// Handler holds auth-related HTTP handlers.
type Handler struct {
	creds        *Credentials
	sessions     SessionStore
	validate     *validation.Validator
	ttl          time.Duration
	secureCookie bool
}

// HandlerConfig tunes the session cookie.
type HandlerConfig struct {
	SessionTTL   time.Duration
	SecureCookie bool
}

func NewHandler(creds *Credentials, sessions SessionStore, v *validation.Validator, cfg HandlerConfig) *Handler {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = SessionTTL
	}
	return &Handler{creds: creds, sessions: sessions, validate: v, ttl: ttl, secureCookie: cfg.SecureCookie}
}

// Register creates a new user and signs them in.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := h.validate.Decode(r.Body, &req); err != nil {
		metrics.AuthEvents.WithLabelValues("register", "invalid").Inc()
		respond.Invalid(w, r, "Invalid registration data", err)
		return
	}

	user, err := h.creds.Register(req)
	var conflict *ConflictError
	switch {
	case errors.As(err, &conflict):
		metrics.AuthEvents.WithLabelValues("register", "conflict").Inc()
		msg := "Username already exists"
		if conflict.Field == "email" {
			msg = "Email already exists"
		}
		respond.JSON(w, r, http.StatusBadRequest, respond.ErrorBody{Message: msg, Field: conflict.Field})
		return
	case err != nil:
		respond.Internal(w, r, "Registration failed", err)
		return
	}

	if !h.startSession(w, r, user.ID) {
		return
	}
	metrics.AuthEvents.WithLabelValues("register", "success").Inc()
	respond.JSON(w, r, http.StatusCreated, user.Summary())
}

// Login authenticates a user and creates a session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := h.validate.Decode(r.Body, &req); err != nil {
		metrics.AuthEvents.WithLabelValues("login", "invalid").Inc()
		respond.Invalid(w, r, "Invalid login data", err)
		return
	}

	user, err := h.creds.Authenticate(req.Username, req.Password)
	if err != nil {
		metrics.AuthEvents.WithLabelValues("login", "failure").Inc()
		respond.Error(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !h.startSession(w, r, user.ID) {
		return
	}
	metrics.AuthEvents.WithLabelValues("login", "success").Inc()
	respond.JSON(w, r, http.StatusOK, user.Summary())
}

// Logout destroys the current session. It succeeds with or without one.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if err := h.sessions.Delete(r.Context(), cookie.Value); err != nil {
			respond.Internal(w, r, "Logout failed", err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	metrics.AuthEvents.WithLabelValues("logout", "success").Inc()
	respond.JSON(w, r, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Me returns the currently authenticated user. It must run behind
// middleware.RequireAuth.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respond.Error(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}
	respond.JSON(w, r, http.StatusOK, user.Summary())
}

// startSession drops any session the request already carries, issues a new
// one for userID and sets the cookie. It reports false after writing an
// error response.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, userID string) bool {
	if old, err := r.Cookie(SessionCookie); err == nil {
		if err := h.sessions.Delete(r.Context(), old.Value); err != nil {
			respond.Internal(w, r, "Session creation failed", err)
			return false
		}
	}

	sid, err := h.sessions.Create(r.Context(), userID)
	if err != nil {
		respond.Internal(w, r, "Session creation failed", err)
		return false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.ttl / time.Second),
	})
	return true
}
