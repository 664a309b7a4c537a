// internal/accounts/handler.go
package accounts

import (
	"encoding/json"
	"net/http"

	"zooplatform/internal/apperr"
)

type Handler struct {
	service Service
	gate    *Gate
}

func NewHandler(service Service, gate *Gate) *Handler {
	return &Handler{service: service, gate: gate}
}

func setSessionCookie(w http.ResponseWriter, session *Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// HandleRegister serves POST /auth/register.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, session, err := h.service.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	setSessionCookie(w, session)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}

// HandleLogin serves POST /auth/login.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, session, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	setSessionCookie(w, session)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// HandleLogout serves POST /auth/logout. Succeeds whether or not a
// session was presented.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		if err := h.service.DestroySession(r.Context(), cookie.Value); err != nil {
			apperr.WriteError(w, err)
			return
		}
	}

	clearSessionCookie(w)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// HandleStatus serves GET /auth/status for any caller.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	session := h.gate.Resolve(r)
	if session == nil {
		json.NewEncoder(w).Encode(map[string]any{"isAuthenticated": false})
		return
	}

	user, err := h.service.UserByID(r.Context(), session.UserID)
	if err != nil {
		apperr.WriteError(w, err)
		return
	}

	json.NewEncoder(w).Encode(map[string]any{
		"isAuthenticated": true,
		"user":            user,
	})
}
