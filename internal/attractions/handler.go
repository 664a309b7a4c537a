// internal/attractions/handler.go
package attractions

import (
	"encoding/json"
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

// HandleList serves GET /attractions. Anonymous callers see open
// attractions unless a status filter says otherwise.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := Filter{
		Status:   r.URL.Query().Get("status"),
		Category: r.URL.Query().Get("category"),
	}

	list, err := h.service.List(r.Context(), filter)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	if list == nil {
		list = []*Attraction{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// HandleGet serves GET /attractions/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid attraction ID", http.StatusBadRequest)
		return
	}

	a, err := h.service.Get(r.Context(), id)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}

// HandleSetStatus serves PATCH /attractions/{id}/status. Staff only;
// role enforcement happens in the router middleware.
func (h *Handler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid attraction ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.service.SetStatus(r.Context(), id, req.Status, req.Reason)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}
