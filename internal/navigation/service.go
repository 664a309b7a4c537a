// internal/navigation/service.go
package navigation

import (
	"context"

	"github.com/google/uuid"

	"zooplatform/internal/attractions"
)

// Service defines the interface for walking-time estimation.
type Service interface {
	EstimateETA(ctx context.Context, req Request) (*Estimate, error)
}

// Registry is the slice of the attraction registry the estimator needs.
type Registry interface {
	Get(ctx context.Context, id uuid.UUID) (*attractions.Attraction, error)
}
