// internal/reports/handler.go
package reports

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"zooplatform/internal/apperr"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// HandleUpsert serves POST /staff-metrics. Staff only.
func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AttractionID   string   `json:"attraction_id"`
		MetricDate     string   `json:"metric_date"`
		TicketSales    *int     `json:"ticket_sales"`
		UptimePct      *float64 `json:"uptime_percentage"`
		VisitorsCount  *int     `json:"visitors_count"`
		AvgWaitMinutes *int     `json:"avg_wait_time_minutes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.WriteError(w, fmt.Errorf("%w: malformed request body", apperr.ErrInvalidInput))
		return
	}

	id, err := uuid.Parse(req.AttractionID)
	if err != nil {
		apperr.WriteError(w, fmt.Errorf("%w: invalid attraction_id", apperr.ErrInvalidInput))
		return
	}
	date, err := time.Parse(dateLayout, req.MetricDate)
	if err != nil {
		apperr.WriteError(w, fmt.Errorf("%w: metric_date must be YYYY-MM-DD", apperr.ErrInvalidInput))
		return
	}
	if req.TicketSales == nil || req.UptimePct == nil || req.VisitorsCount == nil || req.AvgWaitMinutes == nil {
		apperr.WriteError(w, fmt.Errorf("%w: all metric fields are required", apperr.ErrInvalidInput))
		return
	}

	report, err := h.service.Upsert(r.Context(), DailyReport{
		AttractionID:   id,
		Date:           date,
		TicketSales:    *req.TicketSales,
		UptimePct:      *req.UptimePct,
		VisitorsCount:  *req.VisitorsCount,
		AvgWaitMinutes: *req.AvgWaitMinutes,
	})
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// HandleSummary serves GET /staff-metrics/summary. Staff only.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.URL.Query().Get("attraction_id"))
	if err != nil {
		apperr.WriteError(w, fmt.Errorf("%w: invalid attraction_id", apperr.ErrInvalidInput))
		return
	}
	from, err := time.Parse(dateLayout, r.URL.Query().Get("from"))
	if err != nil {
		apperr.WriteError(w, fmt.Errorf("%w: from must be YYYY-MM-DD", apperr.ErrInvalidInput))
		return
	}
	to, err := time.Parse(dateLayout, r.URL.Query().Get("to"))
	if err != nil {
		apperr.WriteError(w, fmt.Errorf("%w: to must be YYYY-MM-DD", apperr.ErrInvalidInput))
		return
	}

	sum, err := h.service.Summary(r.Context(), id, from, to)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sum)
}
