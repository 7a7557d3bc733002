package dashboard

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"australia-analytics/internal/storage"
	"australia-analytics/internal/storage/resilient"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write JSON", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnknownState), errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case storage.IsClientError(err):
		return http.StatusBadRequest
	case errors.Is(err, resilient.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
