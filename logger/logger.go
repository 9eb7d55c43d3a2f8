package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Logger interface {
	Info(msg string, keyvals ...interface{})

	Warn(msg string, keyvals ...interface{})

	Error(msg string, keyvals ...interface{})

	Debug(msg string, keyvals ...interface{})
}

// level is shared by every logger so SetLevel applies to loggers created
// before and after the call.
var level = new(slog.LevelVar)

// output is where New writes. The terminal frontend points it at a file
// because stderr belongs to the screen there.
var output io.Writer = os.Stderr

func New() Logger {
	return NewWithWriter(output)
}

func NewWithWriter(w io.Writer) Logger {
	opts := &slog.HandlerOptions{
		Level:     level, // minimum log level, adjustable at runtime via SetLevel
		AddSource: true,  // include file + line number
	}
	handler := slog.NewJSONHandler(w, opts)
	return slog.New(handler)
}

// NewNop returns a logger that discards everything.
func NewNop() Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// SetOutput changes the destination of loggers created by New from now on.
func SetOutput(w io.Writer) {
	output = w
}

// SetLevel parses one of debug, info, warn or error and applies it to all
// loggers.
func SetLevel(name string) error {
	var l slog.Level
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		l = slog.LevelDebug
	case "", "info":
		l = slog.LevelInfo
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", name)
	}
	level.Set(l)
	return nil
}
