// internal/attractions/domain.go
package attractions

import (
	"time"

	"github.com/google/uuid"
)

// Operating statuses an attraction can be in.
const (
	StatusOpen    = "open"
	StatusClosed  = "closed"
	StatusDelayed = "delayed"
)

// Attraction represents an exhibit, ride, or facility on the zoo site.
type Attraction struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	VisitMinutes int       `json:"visit_minutes"`
	Capacity     int       `json:"capacity"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Filter narrows a listing. Zero values mean "no constraint"; a listing
// with no status constraint defaults to open attractions only.
type Filter struct {
	Status   string
	Category string
}

// NewAttraction carries the fields of an attraction being registered by
// the seed process or an operator.
type NewAttraction struct {
	Name         string
	Category     string
	Latitude     float64
	Longitude    float64
	VisitMinutes int
	Capacity     int
	Status       string
}

func validStatus(s string) bool {
	return s == StatusOpen || s == StatusClosed || s == StatusDelayed
}
