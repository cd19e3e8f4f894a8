package testutil

import (
	"bytes"
	"log/slog"
)

// NewBufferLogger returns a slog logger writing to an in-memory buffer,
// plus the buffer so tests can assert on emitted fields.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return logger, &buf
}
