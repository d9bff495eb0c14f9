package nativeshell

import (
	"log/slog"

	"github.com/phanxgames/nativeshell/internal/logging"
)

// SetLogger sets the logger used by nativeshell and its sub-packages.
// Pass nil to restore the default silent logger.
//
// Logging levels:
//   - Debug: gesture recognition, surface resize, driver version
//   - Info: lifecycle commands, resource loads, context recreation
//   - Warn: recoverable surface or context loss
//   - Error: make-current and recreation failures
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logging.Logger()
}

func logger() *slog.Logger { return logging.Logger() }
