// internal/notifications/service.go
package notifications

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the interface for visitor notifications.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, attractionID *uuid.UUID, category, message string) (*Notification, error)
	BroadcastStatusChange(ctx context.Context, attractionID uuid.UUID, name, newStatus, reason string) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) (*Notification, error)
}
