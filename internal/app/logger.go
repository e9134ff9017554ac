package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

var level = new(slog.LevelVar)

// Logger returns the logger singleton.
// Records below Warn go to stdout, the rest to stderr.
var Logger = sync.OnceValue(func() *slog.Logger {
	return slog.New(newLoggerHandler(os.Stdout, os.Stderr))
})

// SetDebug switches the logger singleton to debug level and back.
func SetDebug(debug bool) {
	if debug {
		level.Set(slog.LevelDebug)
		return
	}

	level.Set(slog.LevelInfo)
}

type loggerHandler struct {
	out slog.Handler
	err slog.Handler
}

func newLoggerHandler(out, errOut io.Writer) *loggerHandler {
	opts := &slog.HandlerOptions{Level: level}

	return &loggerHandler{
		out: slog.NewJSONHandler(out, opts),
		err: slog.NewJSONHandler(errOut, opts),
	}
}

func (h *loggerHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return h.out.Enabled(ctx, l)
}

func (h *loggerHandler) Handle(ctx context.Context, r slog.Record) error {
	// Convert the time to UTC and truncate microseconds
	r.Time = r.Time.UTC().Truncate(time.Second)

	if r.Level >= slog.LevelWarn {
		return h.err.Handle(ctx, r)
	}

	return h.out.Handle(ctx, r)
}

func (h *loggerHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &loggerHandler{out: h.out.WithAttrs(attrs), err: h.err.WithAttrs(attrs)}
}

func (h *loggerHandler) WithGroup(name string) slog.Handler {
	return &loggerHandler{out: h.out.WithGroup(name), err: h.err.WithGroup(name)}
}
