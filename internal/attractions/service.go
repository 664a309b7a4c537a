// internal/attractions/service.go
package attractions

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the interface for the attraction registry.
type Service interface {
	Create(ctx context.Context, na NewAttraction) (*Attraction, error)
	Get(ctx context.Context, id uuid.UUID) (*Attraction, error)
	List(ctx context.Context, filter Filter) ([]*Attraction, error)
	SetStatus(ctx context.Context, id uuid.UUID, newStatus, reason string) (*Attraction, error)
}

// Notifier receives status-change announcements for fan-out to visitors.
type Notifier interface {
	BroadcastStatusChange(ctx context.Context, attractionID uuid.UUID, name, newStatus, reason string) error
}
