package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"datefmt-service/internal/datefmt"
	"datefmt-service/internal/http/middleware"
	"datefmt-service/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeParseFailure reports non-conforming text as 422 with the offending
// text and pattern, so callers can build a useful message.
func writeParseFailure(w http.ResponseWriter, r *http.Request, pErr *datefmt.ParseError, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	body := map[string]string{
		"error":   pErr.Error(),
		"text":    pErr.Text,
		"pattern": pErr.Pattern,
	}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, http.StatusUnprocessableEntity, body, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
