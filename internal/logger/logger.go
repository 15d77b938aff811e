// Package logger configures the structured logger shared by every sprint
// component
package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 10
	maxBackups = 5
	maxAgeDays = 30
)

// New returns a JSON logger writing to a size-rotated file at path.
// The returned closer flushes and closes the current log file.
func New(path string, level slog.Leveler) (*slog.Logger, io.Closer) {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	return NewWithWriter(w, level), w
}

// NewWithWriter returns a JSON logger writing to w.
func NewWithWriter(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Dump logs a deep representation of v at debug level.
func Dump(l *slog.Logger, msg string, v any) {
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	l.Debug(msg, slog.String("value", spew.Sdump(v)))
}
