package middleware

import (
	"net/http"

	"github.com/pdlamini/portfolio/session"
	"github.com/pdlamini/portfolio/userctx"
)

// LoadSession attaches the signed-in admin email, if any, to the request context
func LoadSession(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if email, ok := sessions.IsAuthenticated(r); ok {
				r = r.WithContext(userctx.SetUserEmail(r.Context(), email))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth ensures the user is authenticated.
// If not authenticated, redirects to /login.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !userctx.IsAuthenticated(r.Context()) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
