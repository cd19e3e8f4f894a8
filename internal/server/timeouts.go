package server

import "time"

// Format and parse requests carry no body and complete in-memory, so the
// read/write windows stay short; idle is long to favor keep-alive reuse.
const (
	readTimeout  = 5 * time.Second
	writeTimeout = 5 * time.Second
	idleTimeout  = 120 * time.Second
)

// shutdownTimeout remains a var for tests to override. Nothing in-flight
// outlives a request, so drain time is short.
var shutdownTimeout = 5 * time.Second
