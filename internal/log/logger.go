package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with a component name attached to every record.
type Logger struct {
	*slog.Logger
	handler   slog.Handler
	component string
}

// Config holds logger configuration.
type Config struct {
	Level     slog.Level
	Component string
	Output    io.Writer
}

// DefaultConfig logs warnings and errors to stderr. Normal command output
// goes to stdout, so diagnostics never mix with rendered summaries.
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelWarn,
		Component: ComponentApp,
		Output:    os.Stderr,
	}
}

// New creates a logger with a text handler writing to cfg.Output.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.Level})
	return withHandler(handler, cfg.Component)
}

func withHandler(h slog.Handler, component string) *Logger {
	return &Logger{
		Logger:    slog.New(h).With(FieldComponent, component),
		handler:   h,
		component: component,
	}
}

// Discard returns a logger that drops everything. Useful for tests.
func Discard() *Logger {
	return withHandler(slog.NewTextHandler(io.Discard, nil), ComponentApp)
}

// WithComponent returns a child logger for a specific component.
func (l *Logger) WithComponent(component string) *Logger {
	return withHandler(l.handler, component)
}

// Component returns the logger's component name.
func (l *Logger) Component() string {
	return l.component
}

// ParseLevel converts debug/info/warn/error into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level %q", s)
	}
}
