// Package logging provides structured logging for the tasks UI.
//
// Records fan out through slog-multi to two sinks: a JSON log file and
// a plain-text console writer. The UI owns the terminal while it runs,
// so the console sink is held for that stretch and only speaks before
// the program takes the screen and after it gives it back.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	slogmulti "github.com/samber/slog-multi"
)

// Log levels supported by the logger
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Options selects the sinks of a Logger.
type Options struct {
	// File is the JSON log path. Empty leaves the file sink off.
	File string
	// Level is the minimum level written to the file.
	Level string
	// Console receives text records while the logger is not held.
	// Nil leaves the console sink off.
	Console io.Writer
	// ConsoleLevel is the minimum level written to Console.
	ConsoleLevel string
}

// Logger wraps a slog.Logger together with the file it writes to.
type Logger struct {
	*slog.Logger
	held *atomic.Bool
	file *os.File
}

// New creates a Logger from opts. When opts.File is set the parent
// directory is created and records are appended to the file as JSON.
func New(opts Options) (*Logger, error) {
	if opts.File == "" {
		return NewWithWriter(nil, opts), nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := NewWithWriter(file, opts)
	l.file = file
	return l, nil
}

// NewWithWriter creates a Logger that writes JSON records to w in place
// of opts.File. A nil w leaves the JSON sink off.
func NewWithWriter(w io.Writer, opts Options) *Logger {
	l := &Logger{held: new(atomic.Bool)}

	var handlers []slog.Handler
	if w != nil {
		handlers = append(handlers, slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: ParseLevel(opts.Level),
		}))
	}
	if opts.Console != nil {
		console := slog.NewTextHandler(opts.Console, &slog.HandlerOptions{
			Level: ParseLevel(opts.ConsoleLevel),
		})
		handlers = append(handlers, slogmulti.Pipe(l.unlessHeld()).Handler(console))
	}

	if len(handlers) == 0 {
		l.Logger = slog.New(slog.DiscardHandler)
		return l
	}
	l.Logger = slog.New(slogmulti.Fanout(handlers...))
	return l
}

// Nop returns a Logger that discards everything. Use it in tests and
// when logging is disabled.
func Nop() *Logger {
	return NewWithWriter(nil, Options{})
}

// unlessHeld drops console records while the logger is held.
func (l *Logger) unlessHeld() slogmulti.Middleware {
	return slogmulti.NewEnabledInlineMiddleware(
		func(ctx context.Context, level slog.Level, next func(context.Context, slog.Level) bool) bool {
			return !l.held.Load() && next(ctx, level)
		})
}

// Hold silences the console sink until Release. The file sink is not
// affected.
func (l *Logger) Hold() {
	l.held.Store(true)
}

// Release lets the console sink write again.
func (l *Logger) Release() {
	l.held.Store(false)
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// ParseLevel converts a level name to slog.Level, case-insensitively.
// Unknown names map to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
