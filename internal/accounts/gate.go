// internal/accounts/gate.go
package accounts

import (
	"context"
	"net/http"

	"zooplatform/internal/apperr"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "zoo_session"

type contextKey struct{}

// WithSession attaches a resolved session to the request context.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// SessionFromContext extracts the session placed by RequireAuthenticated.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok
}

// Gate classifies callers as anonymous, visitor, or staff from their
// session cookie and enforces the access level a route requires.
type Gate struct {
	sessions Service
}

func NewGate(sessions Service) *Gate {
	return &Gate{sessions: sessions}
}

// Resolve returns the caller's session, or nil for an anonymous caller.
func (g *Gate) Resolve(r *http.Request) *Session {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	session, err := g.sessions.SessionByToken(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return session
}

// RequireAuthenticated rejects anonymous callers with 401 and places the
// session in the request context for downstream handlers.
func (g *Gate) RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := g.Resolve(r)
		if session == nil {
			apperr.WriteError(w, apperr.ErrUnauthenticated)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// RequireRole rejects callers whose session role does not match. A
// missing session is an authentication failure, never a role failure, so
// this composes after RequireAuthenticated but also stands alone.
func (g *Gate) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := SessionFromContext(r.Context())
			if !ok {
				if session = g.Resolve(r); session == nil {
					apperr.WriteError(w, apperr.ErrUnauthenticated)
					return
				}
				r = r.WithContext(WithSession(r.Context(), session))
			}
			if session.Role != role {
				apperr.WriteError(w, apperr.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
