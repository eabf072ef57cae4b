package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/springvale/admissions/internal/validation"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError renders the single-error envelope used everywhere except
// field validation.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeFieldErrors renders every violated field rule at once.
func writeFieldErrors(w http.ResponseWriter, errs []validation.FieldError) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
}
