// internal/notifications/handler.go
package notifications

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"zooplatform/internal/accounts"
	"zooplatform/internal/apperr"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// HandleList serves GET /notifications for the authenticated caller.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	session, ok := accounts.SessionFromContext(r.Context())
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthenticated)
		return
	}

	list, err := h.service.ListForUser(r.Context(), session.UserID)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}
	if list == nil {
		list = []*Notification{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// HandleMarkRead serves PATCH /notifications/{id}/read.
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	session, ok := accounts.SessionFromContext(r.Context())
	if !ok {
		apperr.WriteError(w, apperr.ErrUnauthenticated)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid notification ID", http.StatusBadRequest)
		return
	}

	n, err := h.service.MarkRead(r.Context(), id, session.UserID)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(n)
}
