package logger

import (
	"log/slog"
	"os"
	"strings"
)

// HandlerFactory builds a handler for the given minimum level.
type HandlerFactory func(level slog.Level) slog.Handler

func New(level string, handler HandlerFactory) *slog.Logger {
	h := handler(ParseLevel(level))
	return slog.New(h)
}

// ForFormat picks the handler for a configured log format: "text" writes
// slog's text format, anything else the JSON severity format.
func ForFormat(format string) HandlerFactory {
	if strings.EqualFold(format, "text") {
		return NewTextHandler
	}
	return NewSeverityHandler
}

func NewTextHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
}

func NewSeverityHandler(level slog.Level) slog.Handler {
	return newSeverityHandler(os.Stdout, level)
}

// ---- Helpers ----

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
