// Package weaverlog is weaver's structured logging layer: a lazily-built
// process-wide zap.Logger, per-server loggers carrying the server's name
// in their context, and optional rotating-file output for hosts that
// want logs on disk rather than just stderr.
package weaverlog

import (
	"log/slog"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

var (
	defaultOnce   sync.Once
	defaultLogger *zap.Logger
)

// Default returns the process-wide logger, building it once on first
// use with a production encoder configuration.
func Default() *zap.Logger {
	defaultOnce.Do(func() {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		defaultLogger = l
	})
	return defaultLogger
}

// ForServer returns a logger bound to a "server" field, so every log
// line a connection fiber emits carries which server it belongs to —
// the diagnostics convention every connection fiber follows.
func ForServer(name string) *zap.Logger {
	return Default().With(zap.String("server", name))
}

// Slog bridges a zap.Logger to the standard library's log/slog, for
// hosts that standardized on slog instead of zap directly.
func Slog(l *zap.Logger) *slog.Logger {
	return slog.New(zapslog.NewHandler(l.Core()))
}

// NewWithCore builds a logger around an arbitrary zapcore.Core, for
// callers that assembled their own core instead of using Default.
func NewWithCore(core zapcore.Core) *zap.Logger {
	return zap.New(core)
}
