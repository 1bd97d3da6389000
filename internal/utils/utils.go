package utils

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteJSON writes v as the JSON response body with the given status. Encoding
// failures happen after the header went out, so they are logged, not returned.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response body", "error", err)
	}
}

// WriteError writes a JSON error payload carrying the status text and a
// human-readable message.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]any{
		"error":   http.StatusText(status),
		"message": msg,
	})
}
