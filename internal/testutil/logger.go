package testutil

import (
	"bytes"
	"log/slog"
)

// NewBufferLogger logs text at debug level into the returned buffer, so per-section and
// per-week lines show up in assertions alongside the run summary.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), buf
}
