// Package logging provides structured logging for propmerge using zerolog.
//
// Loggers travel in the context. The pipeline stages annotate them as they
// go: the Merger adds the operation, the loader the file and version of each
// table, and the reconciler the version being merged, so a debug line always
// says which table it concerns.
//
//	ctx := logging.WithLogger(ctx, &logger)
//	ctx = logging.WithVersion(ctx, "v3.0")
//	logging.FromContext(ctx).Debug().Msg("Reconciling")
package logging

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var defaultLogger atomic.Pointer[zerolog.Logger]

func init() {
	logger := NewLoggerFromConfig(DefaultConfig())
	defaultLogger.Store(&logger)
}

// Default returns the logger used when a context carries none.
func Default() *zerolog.Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the logger returned by Default.
func SetDefault(logger zerolog.Logger) {
	defaultLogger.Store(&logger)
}
