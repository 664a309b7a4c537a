// internal/reports/implementation.go
package reports

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"zooplatform/internal/apperr"
)

// service implements the Service interface.
type service struct {
	db *sql.DB
}

// NewService creates a new reporting store backed by Postgres.
func NewService(db *sql.DB) Service {
	return &service{db: db}
}

// Upsert inserts or replaces the report keyed by (attraction, date).
func (s *service) Upsert(ctx context.Context, report DailyReport) (*DailyReport, error) {
	if report.TicketSales < 0 {
		return nil, fmt.Errorf("%w: ticket_sales must be non-negative", apperr.ErrInvalidInput)
	}
	if report.UptimePct < 0 || report.UptimePct > 100 {
		return nil, fmt.Errorf("%w: uptime_percentage must be between 0 and 100", apperr.ErrInvalidInput)
	}
	if report.VisitorsCount < 0 {
		return nil, fmt.Errorf("%w: visitors_count must be non-negative", apperr.ErrInvalidInput)
	}
	if report.AvgWaitMinutes < 0 {
		return nil, fmt.Errorf("%w: avg_wait_time_minutes must be non-negative", apperr.ErrInvalidInput)
	}
	if report.Date.IsZero() {
		return nil, fmt.Errorf("%w: metric_date is required", apperr.ErrInvalidInput)
	}

	query := `
		INSERT INTO staff_metrics (attraction_id, metric_date, ticket_sales, uptime_percentage, visitors_count, avg_wait_minutes, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (attraction_id, metric_date) DO UPDATE
		SET ticket_sales = EXCLUDED.ticket_sales,
		    uptime_percentage = EXCLUDED.uptime_percentage,
		    visitors_count = EXCLUDED.visitors_count,
		    avg_wait_minutes = EXCLUDED.avg_wait_minutes,
		    recorded_at = EXCLUDED.recorded_at
		RETURNING attraction_id, metric_date, ticket_sales, uptime_percentage, visitors_count, avg_wait_minutes, recorded_at
	`
	out := &DailyReport{}
	err := s.db.QueryRowContext(ctx, query,
		report.AttractionID,
		report.Date,
		report.TicketSales,
		report.UptimePct,
		report.VisitorsCount,
		report.AvgWaitMinutes,
		time.Now().UTC(),
	).Scan(
		&out.AttractionID,
		&out.Date,
		&out.TicketSales,
		&out.UptimePct,
		&out.VisitorsCount,
		&out.AvgWaitMinutes,
		&out.RecordedAt,
	)
	if err != nil {
		// FK violation means the attraction does not exist.
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return nil, fmt.Errorf("%w: attraction %s", apperr.ErrNotFound, report.AttractionID)
		}
		return nil, fmt.Errorf("upsert report: %w", err)
	}
	return out, nil
}

// Summary aggregates reports for one attraction across a date range.
func (s *service) Summary(ctx context.Context, attractionID uuid.UUID, from, to time.Time) (*Summary, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: date range is inverted", apperr.ErrInvalidInput)
	}

	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(ticket_sales), 0),
		       COALESCE(SUM(visitors_count), 0),
		       COALESCE(AVG(uptime_percentage), 0),
		       COALESCE(AVG(avg_wait_minutes), 0)
		FROM staff_metrics
		WHERE attraction_id = $1 AND metric_date BETWEEN $2 AND $3
	`
	sum := &Summary{AttractionID: attractionID}
	err := s.db.QueryRowContext(ctx, query, attractionID, from, to).Scan(
		&sum.Days,
		&sum.TotalSales,
		&sum.TotalVisitors,
		&sum.AvgUptimePct,
		&sum.AvgWaitMinutes,
	)
	if err != nil {
		return nil, fmt.Errorf("query summary: %w", err)
	}
	return sum, nil
}
