package logger

import (
	"log/slog"
	"os"
)

// New builds the process logger. JSON output is the default; text is
// kept for local development.
func New(service string, jsonOut bool) *slog.Logger {
	hostname, _ := os.Hostname()
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	var h slog.Handler
	if jsonOut {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h).With(
		slog.String("service", service),
		slog.String("hostname", hostname),
	)
}
