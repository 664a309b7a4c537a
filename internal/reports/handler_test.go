// internal/reports/handler_test.go
package reports

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReports struct {
	lastUpsert *DailyReport
	summary    *Summary
}

func (f *fakeReports) Upsert(ctx context.Context, report DailyReport) (*DailyReport, error) {
	report.RecordedAt = time.Now()
	f.lastUpsert = &report
	return &report, nil
}

func (f *fakeReports) Summary(ctx context.Context, attractionID uuid.UUID, from, to time.Time) (*Summary, error) {
	return f.summary, nil
}

func postMetrics(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/staff-metrics", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.HandleUpsert(rec, req)
	return rec
}

func TestHandleUpsert(t *testing.T) {
	fake := &fakeReports{}
	h := NewHandler(fake)
	id := uuid.New()

	body := `{
		"attraction_id": "` + id.String() + `",
		"metric_date": "2026-08-29",
		"ticket_sales": 412,
		"uptime_percentage": 98.5,
		"visitors_count": 1250,
		"avg_wait_time_minutes": 12
	}`
	rec := postMetrics(h, body)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, fake.lastUpsert)
	assert.Equal(t, id, fake.lastUpsert.AttractionID)
	assert.Equal(t, 412, fake.lastUpsert.TicketSales)
	assert.Equal(t, 98.5, fake.lastUpsert.UptimePct)
	assert.Equal(t, "2026-08-29", fake.lastUpsert.Date.Format("2006-01-02"))
}

func TestHandleUpsertRejectsBadInput(t *testing.T) {
	h := NewHandler(&fakeReports{})
	id := uuid.NewString()

	cases := []struct {
		name string
		body string
	}{
		{"bad attraction id", `{"attraction_id": "nope", "metric_date": "2026-08-29", "ticket_sales": 1, "uptime_percentage": 99, "visitors_count": 1, "avg_wait_time_minutes": 1}`},
		{"bad date", `{"attraction_id": "` + id + `", "metric_date": "29/08/2026", "ticket_sales": 1, "uptime_percentage": 99, "visitors_count": 1, "avg_wait_time_minutes": 1}`},
		{"missing field", `{"attraction_id": "` + id + `", "metric_date": "2026-08-29", "uptime_percentage": 99, "visitors_count": 1, "avg_wait_time_minutes": 1}`},
		{"non-numeric sales", `{"attraction_id": "` + id + `", "metric_date": "2026-08-29", "ticket_sales": "lots", "uptime_percentage": 99, "visitors_count": 1, "avg_wait_time_minutes": 1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postMetrics(h, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleSummary(t *testing.T) {
	id := uuid.New()
	fake := &fakeReports{summary: &Summary{
		AttractionID:  id,
		Days:          7,
		TotalSales:    2800,
		TotalVisitors: 9100,
		AvgUptimePct:  97.2,
	}}
	h := NewHandler(fake)

	url := "/staff-metrics/summary?attraction_id=" + id.String() + "&from=2026-08-22&to=2026-08-29"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	h.HandleSummary(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var sum Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sum))
	assert.Equal(t, 7, sum.Days)
	assert.Equal(t, 2800, sum.TotalSales)
}

func TestHandleSummaryRequiresDates(t *testing.T) {
	h := NewHandler(&fakeReports{})

	req := httptest.NewRequest(http.MethodGet, "/staff-metrics/summary?attraction_id="+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	h.HandleSummary(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
