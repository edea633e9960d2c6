package logger

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// Format selects the slog handler's output encoding.
type Format string

const (
	// FormatAuto picks JSON for a non-TTY stderr (piped to a file, a
	// systemd unit, a container log collector) and colorless text for a
	// TTY, matching the teacher's dev-vs-production handler split.
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Setup builds and installs the process-wide default slog logger from a
// level string ("debug", "info", "warn", "error") and a Format, writing to
// w (typically os.Stderr so stdout stays free for CLI output/JSON
// responses). It returns the constructed logger so callers that don't want
// a process-global default can use it directly.
func Setup(level, format string, w *os.File) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	switch resolveFormat(format, w) {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

func resolveFormat(format string, w *os.File) Format {
	switch Format(format) {
	case FormatJSON:
		return FormatJSON
	case FormatText:
		return FormatText
	default:
		if w != nil && term.IsTerminal(int(w.Fd())) {
			return FormatText
		}
		return FormatJSON
	}
}

func parseLevel(level string) slog.Level {
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
