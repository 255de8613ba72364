// Package logging provides structured logging setup for the portfolio server and CLI.
package logging

import (
	"io"
	"log/slog"
)

// New builds a logger writing to w.
// Dev mode uses human-readable text at debug level; prod uses JSON at info level.
func New(w io.Writer, devMode bool) *slog.Logger {
	if devMode {
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Setup installs a logger writing to w as the slog default.
func Setup(w io.Writer, devMode bool) {
	slog.SetDefault(New(w, devMode))
}
