// Package logging sets up the debug log. The TUI owns the terminal
// (alternate screen), so diagnostics go to a JSON log file next to the
// config instead of stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Open returns a logger writing JSON records to <dir>/debug.log. The
// level comes from KANBAN_LOG (debug|info|warn|error, default info).
// On any setup failure the returned logger discards everything; a
// broken log file must never take the board down.
func Open(dir string) (*slog.Logger, func()) {
	if dir == "" {
		return discard()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return discard()
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return discard()
	}
	h := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: levelFromEnv()})
	return slog.New(h), func() { _ = f.Close() }
}

func discard() (*slog.Logger, func()) {
	h := slog.NewJSONHandler(io.Discard, nil)
	return slog.New(h), func() {}
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("KANBAN_LOG"))) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
