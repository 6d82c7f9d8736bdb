package cli

import (
	"io"
	"log/slog"
)

// newLogger creates a text slog.Logger for the given level name. Unknown
// names fall back to warn.
func newLogger(levelStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(outW, &slog.HandlerOptions{Level: level}))
}
