package middlewares

import (
	"context"
	"net/http"

	"clinicrecords/internal/logger"
	"clinicrecords/internal/models"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_token"

// SessionResolver defines the minimal interface needed by the middleware.
type SessionResolver interface {
	Resolve(token string) (*models.Session, bool)
}

// RequireSession redirects requests without a valid, unexpired session to
// the login page. Valid sessions are placed in the request context for
// downstream handlers. An expired token behaves exactly like a missing one.
func RequireSession(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			sess, ok := resolver.Resolve(cookie.Value)
			if !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := setSessionToContext(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole denies requests whose session lacks the given role. Always
// stacked after RequireSession, so authentication is checked first. The
// denial is a plain 403, not a redirect.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := GetSessionFromContext(r.Context())
			if sess == nil || sess.Role != role {
				logger.Log.Infow("access denied", "path", r.URL.Path, "required_role", role)
				http.Error(w, "access denied", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var sessionKey = contextKey{}

// setSessionToContext stores a session in the context
func setSessionToContext(ctx context.Context, sess *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// GetSessionFromContext retrieves the session from the context. Returns nil if not present.
func GetSessionFromContext(ctx context.Context) *models.Session {
	sess, _ := ctx.Value(sessionKey).(*models.Session)
	return sess
}
