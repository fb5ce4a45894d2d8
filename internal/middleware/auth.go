package middleware

import (
	"net/http"

	"github.com/cyberhub/community-platform/backend/internal/auth"
	"github.com/cyberhub/community-platform/backend/internal/models"
	"github.com/cyberhub/community-platform/backend/internal/respond"
)

// UserLookup resolves a session's user id to the current user record.
type UserLookup interface {
	Get(id string) (models.User, bool)
}

// RequireAuth is middleware that validates the session cookie, loads the
// session's user and injects it into the request context.
func RequireAuth(sessions auth.SessionStore, users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := resolve(w, r, sessions, users)
			if !ok {
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), user)))
		})
	}
}

// RequireAdmin is RequireAuth plus an isAdmin check. The flag is read from
// the store on every request, so revoking it takes effect immediately.
func RequireAdmin(sessions auth.SessionStore, users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := resolve(w, r, sessions, users)
			if !ok {
				return
			}
			if !user.IsAdmin {
				respond.Error(w, r, http.StatusForbidden, "Admin access required")
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), user)))
		})
	}
}

// resolve writes a 401 and reports false unless the request carries a live
// session bound to an existing user.
func resolve(w http.ResponseWriter, r *http.Request, sessions auth.SessionStore, users UserLookup) (models.User, bool) {
	cookie, err := r.Cookie(auth.SessionCookie)
	if err != nil || cookie.Value == "" {
		respond.Error(w, r, http.StatusUnauthorized, "Not authenticated")
		return models.User{}, false
	}

	userID, err := sessions.Get(r.Context(), cookie.Value)
	if err != nil {
		respond.Internal(w, r, "Session lookup failed", err)
		return models.User{}, false
	}
	if userID == "" {
		respond.Error(w, r, http.StatusUnauthorized, "Session expired")
		return models.User{}, false
	}

	user, ok := users.Get(userID)
	if !ok {
		respond.Error(w, r, http.StatusUnauthorized, "Not authenticated")
		return models.User{}, false
	}
	return user, true
}
