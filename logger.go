package colorlit

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with scans on any goroutine.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger configures the logger for colorlit and its sub-packages.
// By default colorlit produces no log output.
//
// Pass nil to restore the silent default.
//
// Levels used by colorlit:
//   - Debug: rejected candidates, skipped conversions, cache evictions
//   - Info: batch progress (batch package)
//   - Warn: files that could not be processed (batch package)
//
// Example:
//
//	logger, _ := zap.NewDevelopment()
//	colorlit.SetLogger(logger)
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
// Sub-packages call this to share the same configuration.
func Logger() *zap.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}
