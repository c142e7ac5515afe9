// Package logger создаёт JSON-логгер сервиса.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New возвращает JSON slog.Logger с уровнем из конфигурации.
func New(level string) *slog.Logger {
	return NewWithWriter(os.Stdout, level)
}

func NewWithWriter(w io.Writer, level string) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(h).With("service", "team-member-service")
}

// ParseLevel переводит строковый уровень в slog.Level; неизвестные значения дают info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
