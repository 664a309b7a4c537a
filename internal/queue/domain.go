// internal/queue/domain.go
package queue

import (
	"time"

	"github.com/google/uuid"
)

// State is the current queue picture for one attraction.
type State struct {
	AttractionID   uuid.UUID `json:"attraction_id"`
	AttractionName string    `json:"attraction_name,omitempty"`
	Length         int       `json:"queue_length"`
	WaitMinutes    int       `json:"estimated_wait_minutes"`
	UpdatedAt      time.Time `json:"updated_at"`
}
