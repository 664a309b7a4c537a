// internal/accounts/domain.go
package accounts

import (
	"time"

	"github.com/google/uuid"
)

// Roles a user can hold. The role is fixed at creation.
const (
	RoleVisitor = "visitor"
	RoleStaff   = "staff"
)

// User represents a registered platform user.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
}

// Session binds an opaque bearer token to a user identity and role for a
// bounded time. The role never changes for the session's lifetime.
type Session struct {
	Token     string    `json:"-"`
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
