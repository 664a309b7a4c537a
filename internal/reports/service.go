// internal/reports/service.go
package reports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service defines the interface for staff daily reporting.
type Service interface {
	Upsert(ctx context.Context, report DailyReport) (*DailyReport, error)
	Summary(ctx context.Context, attractionID uuid.UUID, from, to time.Time) (*Summary, error)
}
