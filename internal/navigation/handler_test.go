// internal/navigation/handler_test.go
package navigation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEstimator struct {
	lastReq Request
	result  *Estimate
	err     error
}

func (f *fakeEstimator) EstimateETA(ctx context.Context, req Request) (*Estimate, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func postETA(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/navigation/eta", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.HandleETA(rec, req)
	return rec
}

func TestHandleETANonNumericCoordinates(t *testing.T) {
	h := NewHandler(&fakeEstimator{})

	rec := postETA(t, h, `{"user_latitude": "abc", "user_longitude": -0.15, "attraction_id": "x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "coordinates must be numeric")
}

func TestHandleETAMissingCoordinates(t *testing.T) {
	h := NewHandler(&fakeEstimator{})

	rec := postETA(t, h, `{"attraction_id": "`+uuid.NewString()+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "coordinates required")
}

func TestHandleETAInvalidAttractionID(t *testing.T) {
	h := NewHandler(&fakeEstimator{})

	rec := postETA(t, h, `{"user_latitude": 51.5, "user_longitude": -0.15, "attraction_id": "not-a-uuid"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid attraction_id")
}

func TestHandleETASuccess(t *testing.T) {
	id := uuid.New()
	fake := &fakeEstimator{
		result: &Estimate{
			AttractionID:    id,
			AttractionName:  "Penguin Pool",
			DistanceMeters:  787,
			DistanceKM:      0.79,
			WalkTimeMinutes: 9,
		},
	}
	h := NewHandler(fake)

	rec := postETA(t, h, `{"user_latitude": 51.5355, "user_longitude": -0.1512, "attraction_id": "`+id.String()+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(787), resp["distance_meters"])
	assert.Equal(t, 0.79, resp["distance_km"])
	assert.Equal(t, float64(9), resp["estimated_walk_time_minutes"])

	require.NotNil(t, fake.lastReq.Latitude)
	assert.Equal(t, 51.5355, *fake.lastReq.Latitude)
	assert.Equal(t, id, fake.lastReq.AttractionID)
}
