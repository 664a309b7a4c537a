// internal/navigation/implementation.go
package navigation

import (
	"context"
	"fmt"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"zooplatform/internal/apperr"
)

// service implements the Service interface.
type service struct {
	registry Registry
	tracer   trace.Tracer
}

// NewService creates a new ETA estimator over the given registry.
func NewService(registry Registry) Service {
	return &service{
		registry: registry,
		tracer:   otel.Tracer("zooplatform/navigation"),
	}
}

// EstimateETA validates the visitor coordinates, resolves the attraction,
// and computes the walking estimate. Validation runs strictly before the
// registry lookup, each failure distinct.
func (s *service) EstimateETA(ctx context.Context, req Request) (*Estimate, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return nil, fmt.Errorf("%w: coordinates required", apperr.ErrInvalidInput)
	}
	lat, lon := *req.Latitude, *req.Longitude
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return nil, fmt.Errorf("%w: coordinates must be numeric", apperr.ErrInvalidInput)
	}
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("%w: latitude out of range", apperr.ErrInvalidInput)
	}
	if lon < -180 || lon > 180 {
		return nil, fmt.Errorf("%w: longitude out of range", apperr.ErrInvalidInput)
	}

	ctx, span := s.tracer.Start(ctx, "navigation.estimate",
		trace.WithAttributes(attribute.String("attraction.id", req.AttractionID.String())),
	)
	defer span.End()

	a, err := s.registry.Get(ctx, req.AttractionID)
	if err != nil {
		return nil, err
	}

	meters := Distance(lat, lon, a.Latitude, a.Longitude)
	est := &Estimate{
		AttractionID:    a.ID,
		AttractionName:  a.Name,
		DistanceMeters:  int(math.Round(meters)),
		DistanceKM:      math.Round(meters/10) / 100,
		WalkTimeMinutes: WalkingMinutes(meters),
	}

	span.SetAttributes(
		attribute.Int("distance.meters", est.DistanceMeters),
		attribute.Int("walk.minutes", est.WalkTimeMinutes),
	)
	return est, nil
}
