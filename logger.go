package vtxt

import "log/slog"

import "github.com/vultureui/vtxt/internal/logger"

// Sets the logger used by vtxt and all its subpackages. Passing nil
// disables logging again.
//
// Font loads and shutdowns are logged at [slog.LevelInfo], discarded
// failures at [slog.LevelWarn] and wrapping decisions at
// [slog.LevelDebug].
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// Returns the logger currently used by vtxt. Never nil.
func Logger() *slog.Logger {
	return logger.Get()
}
