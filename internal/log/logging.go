// Package log builds the process slog.Logger.
//
// Console output always goes to stderr so that columns, records or generated
// sources printed on stdout stay machine readable. An optional log file
// receives the same records.
package log

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
)

// LevelTrace sits below Debug and is used for per-column compile output.
const LevelTrace slog.Level = -8

var levels = map[string]slog.Level{
	"trace": LevelTrace,
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLevel maps a --log.level value to a slog level. Unknown or empty names
// fall back to info.
func ParseLevel(s string) slog.Level {
	if l, ok := levels[s]; ok {
		return l
	}
	return slog.LevelInfo
}

// Tee returns a handler that passes every record to each handler enabled for
// its level.
func Tee(handlers ...slog.Handler) slog.Handler {
	if len(handlers) == 1 {
		return handlers[0]
	}
	return teeHandler(handlers)
}

type teeHandler []slog.Handler

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range t {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return t.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	return t.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (t teeHandler) each(fn func(slog.Handler) slog.Handler) teeHandler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = fn(h)
	}
	return out
}

// SetupLogger opens the optional log file and builds the logger. The returned
// closers must be closed on exit.
func SetupLogger(logLevel, logFile string) (*slog.Logger, []io.Closer, error) {
	var closers []io.Closer
	var file io.Writer
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, f)
		file = f
	}
	return NewLogger(ParseLevel(logLevel), os.Stderr, file), closers, nil
}

// NewLogger writes text records at level and above to console and, when not
// nil, to file.
func NewLogger(level slog.Level, console, file io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: levelName}
	handlers := []slog.Handler{slog.NewTextHandler(console, opts)}
	if file != nil {
		handlers = append(handlers, slog.NewTextHandler(file, opts))
	}
	return slog.New(Tee(handlers...))
}

// levelName prints LevelTrace as TRACE instead of DEBUG-4.
func levelName(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if l, ok := a.Value.Any().(slog.Level); ok && l == LevelTrace {
			a.Value = slog.StringValue("TRACE")
		}
	}
	return a
}
