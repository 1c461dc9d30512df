package app

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lmittmann/tint"
)

// openLogger opens the application log file and returns a slog logger
// writing to it. The terminal belongs to the TUI, so nothing may log
// to stdout or stderr. Failures fall back to a discarding logger; a
// broken log path must not keep the application from starting.
func openLogger(path string) (*slog.Logger, func()) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return slog.New(slog.DiscardHandler), func() {}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return slog.New(slog.DiscardHandler), func() {}
	}

	handler := tint.NewHandler(file, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: "15:04:05",
		NoColor:    true,
	})
	return slog.New(handler), func() { _ = file.Close() }
}
