// Package logging provides structured logging for the stardrift
// simulation. It wraps log/slog with a JSON handler, stamps every
// record with a per-process run ID, and can line records up against
// the fixed-step timeline via a tick carried in the context.
package logging

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with the simulation's conventions: JSON
// records, a run_id on everything, and context-aware level methods.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a logger writing JSON to stdout. The level comes
// from STARDRIFT_LOG_LEVEL (DEBUG, INFO, WARN, ERROR) and defaults to
// INFO. Records carry a random run_id so output from repeated sessions
// on one host can be told apart.
func NewLogger() *Logger {
	return NewLoggerWithWriter(os.Stdout)
}

// NewLoggerWithWriter is NewLogger with an explicit sink. Tests pass a
// buffer.
func NewLoggerWithWriter(w io.Writer) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
	return &Logger{slog.New(handler).With("run_id", newRunID())}
}

// tickKey carries the current simulation tick through a context.
type tickKey struct{}

// WithTick tags a context with the simulation tick. Records logged
// under that context gain a "tick" attribute.
func WithTick(ctx context.Context, tick uint64) context.Context {
	return context.WithValue(ctx, tickKey{}, tick)
}

// TickFromContext returns the tick stored by WithTick, if any.
func TickFromContext(ctx context.Context) (uint64, bool) {
	tick, ok := ctx.Value(tickKey{}).(uint64)
	return tick, ok
}

func (l *Logger) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	if tick, ok := TickFromContext(ctx); ok {
		args = append(args, "tick", tick)
	}
	l.Log(ctx, level, msg, args...)
}

// Info logs an informational message.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelWarn, msg, args...)
}

// Error logs an error message. A nil err is allowed and adds nothing.
func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.log(ctx, slog.LevelError, msg, args...)
}

// Debug logs a debug message.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelDebug, msg, args...)
}

func levelFromEnv() slog.Level {
	switch strings.ToUpper(os.Getenv("STARDRIFT_LOG_LEVEL")) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newRunID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// WrapError adds context to an error, formatting when args are given.
// A nil error stays nil.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}
