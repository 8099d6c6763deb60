// Package logging defines the structured-logging interface used across
// nutrio. Two backends are provided: log/slog and rs/zerolog.
package logging

import (
	"context"
	"io"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "subscription fetched", "user_id", id, "active", true)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

const (
	BackendSlog    = "slog"
	BackendZerolog = "zerolog"
)

// New builds a Logger for the named backend writing to w. Unknown backends
// fall back to slog; unknown levels fall back to info.
func New(backend, level string, w io.Writer) Logger {
	switch strings.ToLower(backend) {
	case BackendZerolog:
		return NewZerologLogger(w, level)
	default:
		return NewSlogTextLogger(w, level)
	}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return NewSlogTextLogger(io.Discard, "error")
}
