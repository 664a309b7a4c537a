// internal/navigation/handler.go
package navigation

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"zooplatform/internal/apperr"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// HandleETA serves POST /navigation/eta. Open to anonymous callers.
func (h *Handler) HandleETA(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserLatitude  *json.Number `json:"user_latitude"`
		UserLongitude *json.Number `json:"user_longitude"`
		AttractionID  string       `json:"attraction_id"`
	}

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		// A non-number in a coordinate field fails here.
		apperr.WriteError(w, fmt.Errorf("%w: coordinates must be numeric", apperr.ErrInvalidInput))
		return
	}

	estReq := Request{}
	if req.UserLatitude != nil {
		v, err := req.UserLatitude.Float64()
		if err != nil {
			apperr.WriteError(w, fmt.Errorf("%w: coordinates must be numeric", apperr.ErrInvalidInput))
			return
		}
		estReq.Latitude = &v
	}
	if req.UserLongitude != nil {
		v, err := req.UserLongitude.Float64()
		if err != nil {
			apperr.WriteError(w, fmt.Errorf("%w: coordinates must be numeric", apperr.ErrInvalidInput))
			return
		}
		estReq.Longitude = &v
	}

	if estReq.Latitude == nil || estReq.Longitude == nil {
		apperr.WriteError(w, fmt.Errorf("%w: coordinates required", apperr.ErrInvalidInput))
		return
	}

	id, err := uuid.Parse(req.AttractionID)
	if err != nil {
		apperr.WriteError(w, fmt.Errorf("%w: invalid attraction_id", apperr.ErrInvalidInput))
		return
	}
	estReq.AttractionID = id

	est, err := h.service.EstimateETA(r.Context(), estReq)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(est)
}
