// internal/queue/service.go
package queue

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the interface for queue state reads and transitions.
type Service interface {
	GetStatus(ctx context.Context, attractionID uuid.UUID) (*State, error)
	ListAll(ctx context.Context) ([]*State, error)
	Join(ctx context.Context, attractionID uuid.UUID) (*State, error)
	Override(ctx context.Context, attractionID uuid.UUID, length, waitMinutes int) (*State, error)
}
