// internal/accounts/gate_test.go
package accounts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zooplatform/internal/apperr"
)

// fakeSessions resolves tokens from a map; every other Service method is
// unused by the gate.
type fakeSessions struct {
	sessions map[string]*Session
}

func (f *fakeSessions) SessionByToken(ctx context.Context, token string) (*Session, error) {
	s, ok := f.sessions[token]
	if !ok || s.Expired() {
		return nil, apperr.ErrUnauthenticated
	}
	return s, nil
}

func (f *fakeSessions) Register(ctx context.Context, email, password string) (*User, *Session, error) {
	return nil, nil, nil
}
func (f *fakeSessions) ProvisionStaff(ctx context.Context, email, password string) (*User, error) {
	return nil, nil
}
func (f *fakeSessions) Authenticate(ctx context.Context, email, password string) (*User, *Session, error) {
	return nil, nil, nil
}
func (f *fakeSessions) UserByID(ctx context.Context, id uuid.UUID) (*User, error) { return nil, nil }
func (f *fakeSessions) DestroySession(ctx context.Context, token string) error    { return nil }
func (f *fakeSessions) PurgeExpiredSessions(ctx context.Context) (int64, error)   { return 0, nil }

func session(role string) *Session {
	return &Session{
		Token:     uuid.NewString(),
		UserID:    uuid.New(),
		Role:      role,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func requestWithCookie(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	}
	return req
}

func TestRequireAuthenticatedRejectsAnonymous(t *testing.T) {
	gate := NewGate(&fakeSessions{sessions: map[string]*Session{}})

	var called bool
	rec := httptest.NewRecorder()
	gate.RequireAuthenticated(okHandler(&called)).ServeHTTP(rec, requestWithCookie(""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireAuthenticatedRejectsExpired(t *testing.T) {
	expired := session(RoleVisitor)
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	gate := NewGate(&fakeSessions{sessions: map[string]*Session{expired.Token: expired}})

	var called bool
	rec := httptest.NewRecorder()
	gate.RequireAuthenticated(okHandler(&called)).ServeHTTP(rec, requestWithCookie(expired.Token))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireAuthenticatedPassesSessionDownstream(t *testing.T) {
	visitor := session(RoleVisitor)
	gate := NewGate(&fakeSessions{sessions: map[string]*Session{visitor.Token: visitor}})

	var got *Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = SessionFromContext(r.Context())
	})
	rec := httptest.NewRecorder()
	gate.RequireAuthenticated(next).ServeHTTP(rec, requestWithCookie(visitor.Token))

	require.NotNil(t, got)
	assert.Equal(t, visitor.UserID, got.UserID)
	assert.Equal(t, RoleVisitor, got.Role)
}

func TestRequireRoleForbidsWrongRole(t *testing.T) {
	visitor := session(RoleVisitor)
	gate := NewGate(&fakeSessions{sessions: map[string]*Session{visitor.Token: visitor}})

	var called bool
	handler := gate.RequireAuthenticated(gate.RequireRole(RoleStaff)(okHandler(&called)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithCookie(visitor.Token))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	staff := session(RoleStaff)
	gate := NewGate(&fakeSessions{sessions: map[string]*Session{staff.Token: staff}})

	var called bool
	handler := gate.RequireAuthenticated(gate.RequireRole(RoleStaff)(okHandler(&called)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithCookie(staff.Token))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

// A role check on an absent session is an authentication failure, not a
// role failure.
func TestRequireRoleWithoutSessionIsUnauthenticated(t *testing.T) {
	gate := NewGate(&fakeSessions{sessions: map[string]*Session{}})

	var called bool
	handler := gate.RequireRole(RoleStaff)(okHandler(&called))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithCookie(""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}
