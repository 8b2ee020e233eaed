package logger

import (
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With returns a Logger that adds the given attributes to every record,
	// used to tag records with the emitting component.
	With(args ...any) Logger
}

type Options struct {
	Buffer io.Writer
	Level  Level
	Type   Type
}

var DefaultLogger = New(Options{os.Stdout, DefaultLevel, TypeText})

type logger struct {
	*slog.Logger
}

func New(opts Options) Logger {
	if opts.Buffer == nil {
		opts.Buffer = os.Stdout
	}
	handlerOpts := &slog.HandlerOptions{Level: levels[opts.Level]}

	var handler slog.Handler
	switch opts.Type {
	case TypeJSON:
		handler = slog.NewJSONHandler(opts.Buffer, handlerOpts)
	case TypeText:
		fallthrough
	default:
		handler = slog.NewTextHandler(opts.Buffer, handlerOpts)
	}
	return &logger{
		Logger: slog.New(handler),
	}
}

func (l *logger) With(args ...any) Logger {
	return &logger{Logger: l.Logger.With(args...)}
}

// Nop returns a Logger that drops everything. Hosts that own the terminal
// (full-screen renderers) use it when no log file is configured.
func Nop() Logger {
	return New(Options{Buffer: io.Discard, Level: ErrorLevel})
}

// OrStderr returns l, or a logger writing errors to stderr when l is nil.
// Contract violations stay visible for hosts that never configured logging.
func OrStderr(l Logger) Logger {
	if l == nil {
		return New(Options{Buffer: os.Stderr, Level: ErrorLevel})
	}
	return l
}
