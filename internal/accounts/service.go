// internal/accounts/service.go
package accounts

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the interface for user accounts and sessions.
type Service interface {
	Register(ctx context.Context, email, password string) (*User, *Session, error)
	ProvisionStaff(ctx context.Context, email, password string) (*User, error)
	Authenticate(ctx context.Context, email, password string) (*User, *Session, error)
	UserByID(ctx context.Context, id uuid.UUID) (*User, error)
	SessionByToken(ctx context.Context, token string) (*Session, error)
	DestroySession(ctx context.Context, token string) error
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}
