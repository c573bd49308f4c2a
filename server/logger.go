package server

import (
	"log/slog"
	"os"
)

// NewLogger crea el logger estructurado JSON del servidor con el nivel
// indicado ("debug", "info", "warn", "error")
func NewLogger(nivel string) *slog.Logger {
	var level slog.Level
	switch nivel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
