// internal/queue/handler.go
package queue

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"zooplatform/internal/apperr"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// HandleListAll serves GET /queue.
func (h *Handler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListAll(r.Context())
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	if list == nil {
		list = []*State{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// HandleGetStatus serves GET /queue/{id}.
func (h *Handler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid attraction ID", http.StatusBadRequest)
		return
	}

	st, err := h.service.GetStatus(r.Context(), id)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(st)
}

// HandleJoin serves POST /queue/{id}/join.
func (h *Handler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid attraction ID", http.StatusBadRequest)
		return
	}

	st, err := h.service.Join(r.Context(), id)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(st)
}

// HandleOverride serves PATCH /queue/{id}. Staff only; both fields are
// required and must decode as JSON numbers.
func (h *Handler) HandleOverride(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid attraction ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Length      *int `json:"queue_length"`
		WaitMinutes *int `json:"estimated_wait_minutes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.WriteError(w, fmt.Errorf("%w: queue_length and estimated_wait_minutes must be numeric", apperr.ErrInvalidInput))
		return
	}
	if req.Length == nil || req.WaitMinutes == nil {
		apperr.WriteError(w, fmt.Errorf("%w: queue_length and estimated_wait_minutes are required", apperr.ErrInvalidInput))
		return
	}

	st, err := h.service.Override(r.Context(), id, *req.Length, *req.WaitMinutes)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(st)
}
