// internal/notifications/domain.go
package notifications

import (
	"time"

	"github.com/google/uuid"
)

// Notification categories.
const (
	CategoryStatusChange = "status_change"
	CategoryQueueAlert   = "queue_alert"
	CategoryGeneral      = "general"
)

// Notification is a message addressed to one user, optionally about one
// attraction.
type Notification struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	AttractionID *uuid.UUID `json:"attraction_id,omitempty"`
	Category     string     `json:"category"`
	Message      string     `json:"message"`
	Read         bool       `json:"read"`
	CreatedAt    time.Time  `json:"created_at"`
}
