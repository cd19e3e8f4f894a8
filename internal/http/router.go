package http

import (
	nethttp "net/http"

	"datefmt-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/patterns", handler.Patterns)
	mux.HandleFunc("/format", handler.Format)
	mux.HandleFunc("/parse", handler.Parse)
	return mux
}
