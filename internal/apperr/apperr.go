// internal/apperr/apperr.go
package apperr

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Sentinel errors for the failure kinds the platform distinguishes.
// Services wrap these with fmt.Errorf("%w: ...") to add field context.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrConflict           = errors.New("conflict")
	ErrRateLimited        = errors.New("rate limit exceeded")
)

func statusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders err as a JSON error response. Unrecognized errors
// become a generic 500 so storage details never reach the caller.
func WriteError(w http.ResponseWriter, err error) {
	code := statusCode(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal server error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
