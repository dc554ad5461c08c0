package logger

import (
	"log/slog"
	"os"
)

// Setup returns the process logger: human-readable text in development,
// JSON elsewhere.
func Setup(env string) *slog.Logger {
	var h slog.Handler
	switch env {
	case "development":
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return slog.New(h)
}

// Err wraps an error for structured log output.
func Err(err error) slog.Attr {
	return slog.Attr{Key: "error", Value: slog.StringValue(err.Error())}
}
