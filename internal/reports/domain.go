// internal/reports/domain.go
package reports

import (
	"time"

	"github.com/google/uuid"
)

// DailyReport is one attraction's operational figures for one calendar
// day. At most one report exists per (attraction, date); writing again
// replaces the earlier figures.
type DailyReport struct {
	AttractionID   uuid.UUID `json:"attraction_id"`
	Date           time.Time `json:"metric_date"`
	TicketSales    int       `json:"ticket_sales"`
	UptimePct      float64   `json:"uptime_percentage"`
	VisitorsCount  int       `json:"visitors_count"`
	AvgWaitMinutes int       `json:"avg_wait_time_minutes"`
	RecordedAt     time.Time `json:"recorded_at"`
}

// Summary aggregates daily reports over a date range.
type Summary struct {
	AttractionID   uuid.UUID `json:"attraction_id"`
	Days           int       `json:"days"`
	TotalSales     int       `json:"total_ticket_sales"`
	TotalVisitors  int       `json:"total_visitors"`
	AvgUptimePct   float64   `json:"avg_uptime_percentage"`
	AvgWaitMinutes float64   `json:"avg_wait_time_minutes"`
}
