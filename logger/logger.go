package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const logFileName = "flightdesk.log"

var (
	baseOnce sync.Once
	base     *slog.Logger
)

// Logger is a component-scoped structured logger.
type Logger struct {
	*slog.Logger
}

// NewLogger returns a logger tagged with the component name and an instance
// id, writing through the process-wide handler.
func NewLogger(component, id string) *Logger {
	return &Logger{Logger: root().With("component", component, "instance", id)}
}

// New wraps an existing slog logger. Used by tests to capture output.
func New(l *slog.Logger) *Logger {
	return &Logger{Logger: l}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// With returns a logger carrying additional attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

func root() *slog.Logger {
	baseOnce.Do(func() {
		base = slog.New(newHandler(LogConfig()))
	})
	return base
}

func newHandler(cfg *Conf) slog.Handler {
	var out io.Writer = os.Stderr
	if cfg.LogDir != "" {
		f, err := os.OpenFile(filepath.Join(cfg.LogDir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file: %s", err)
		}
		out = f
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(out, opts)
	}
	return slog.NewTextHandler(out, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
