package logger

import (
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

func ParseLevel(level string) slog.Level {
	switch level {
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

// New builds the application logger. Anything but FormatText is written as JSON.
func New(level, format string, out io.Writer) *slog.Logger {
	lvl := ParseLevel(level)

	if format == FormatText {
		handler := charmlog.NewWithOptions(out, charmlog.Options{
			Level:           charmlog.Level(lvl),
			ReportTimestamp: true,
		})

		return slog.New(handler)
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: lvl}))
}
