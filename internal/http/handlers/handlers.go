package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"time"

	"datefmt-service/internal/datefmt"
	"datefmt-service/internal/logging"
	"datefmt-service/internal/metrics"
)

// valueLayout is the wire format for naive date/time values in request and
// response bodies: an RFC 3339 timestamp without an offset.
const valueLayout = "2006-01-02T15:04:05"

// Handler wires the HTTP routes to the formatter.
type Handler struct {
	logger   *slog.Logger
	rec      *metrics.Recorder
	draining func() bool
}

// NewHandler constructs a Handler. Logger, recorder and the draining probe
// may be nil; draining reports whether graceful shutdown has begun so health
// checks can start failing before the listener closes.
func NewHandler(logger *slog.Logger, rec *metrics.Recorder, draining func() bool) *Handler {
	return &Handler{logger: logger, rec: rec, draining: draining}
}

// PatternInfo describes one named pattern in the /patterns response.
type PatternInfo struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

// FormatResponse is the /format response body.
type FormatResponse struct {
	Pattern   string `json:"pattern"`
	Formatted string `json:"formatted"`
}

// ParseResponse is the /parse response body.
type ParseResponse struct {
	Pattern string `json:"pattern"`
	Value   string `json:"value"`
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.draining != nil && h.draining() {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Patterns returns the named pattern table.
func (h *Handler) Patterns(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	patterns := make([]PatternInfo, 0, len(datefmt.Patterns()))
	for _, p := range datefmt.Patterns() {
		s, err := p.PatternString()
		if err != nil {
			continue
		}
		patterns = append(patterns, PatternInfo{Name: p.String(), Pattern: s})
	}
	writeJSON(w, nethttp.StatusOK, patterns, h.logger)
}

// Format renders a date/time value with the requested pattern.
func (h *Handler) Format(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	raw := r.URL.Query().Get("value")
	if raw == "" {
		writeError(w, r, nethttp.StatusBadRequest, "missing value parameter", h.logger)
		return
	}
	value, err := time.Parse(valueLayout, raw)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid value (expected YYYY-MM-DDTHH:MM:SS)", h.logger)
		return
	}

	pattern, label := resolvePattern(r.URL.Query().Get("pattern"))

	start := time.Now()
	formatted, err := formatWith(value, pattern)
	h.rec.RecordOperation(metrics.OpFormat, label, time.Since(start), err)

	if err != nil {
		h.writeOperationError(w, r, err)
		return
	}

	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "formatted value", logging.FieldOperation, metrics.OpFormat, logging.FieldPattern, label)
	writeJSON(w, nethttp.StatusOK, FormatResponse{Pattern: label, Formatted: formatted}, h.logger)
}

// Parse interprets text with the requested pattern.
func (h *Handler) Parse(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	text := r.URL.Query().Get("text")
	if text == "" {
		writeError(w, r, nethttp.StatusBadRequest, "missing text parameter", h.logger)
		return
	}

	pattern, label := resolvePattern(r.URL.Query().Get("pattern"))

	start := time.Now()
	value, err := parseWith(text, pattern)
	h.rec.RecordOperation(metrics.OpParse, label, time.Since(start), err)

	if err != nil {
		h.writeOperationError(w, r, err)
		return
	}

	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "parsed value", logging.FieldOperation, metrics.OpParse, logging.FieldPattern, label)
	writeJSON(w, nethttp.StatusOK, ParseResponse{Pattern: label, Value: value.Format(valueLayout)}, h.logger)
}

type resolvedPattern struct {
	named  datefmt.Pattern
	custom string
}

// resolvePattern maps the pattern query parameter to either a named pattern
// or a custom pattern string. The label is what gets logged and recorded:
// the canonical name for named patterns, "custom" otherwise.
func resolvePattern(param string) (resolvedPattern, string) {
	if param == "" {
		return resolvedPattern{named: datefmt.PatternDefault}, datefmt.PatternDefault.String()
	}
	if p, ok := datefmt.PatternByName(param); ok {
		return resolvedPattern{named: p}, p.String()
	}
	return resolvedPattern{custom: param}, "custom"
}

func formatWith(value time.Time, p resolvedPattern) (string, error) {
	if p.custom != "" {
		return datefmt.FormatLayout(value, p.custom)
	}
	return datefmt.FormatPattern(value, p.named)
}

func parseWith(text string, p resolvedPattern) (time.Time, error) {
	if p.custom != "" {
		return datefmt.ParseLayout(text, p.custom)
	}
	return datefmt.ParsePattern(text, p.named)
}

func (h *Handler) writeOperationError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	if pErr, ok := datefmt.AsParseError(err); ok {
		writeParseFailure(w, r, pErr, h.logger)
		return
	}
	if errors.Is(err, datefmt.ErrInvalidArgument) {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	writeError(w, r, nethttp.StatusInternalServerError, "internal error", h.logger)
}
