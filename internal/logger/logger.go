// Package logger holds the logger shared by vtxt and its subpackages.
// Use vtxt.SetLogger to configure it.
package logger

import "context"
import "log/slog"
import "sync/atomic"

// nopHandler discards everything. Enabled returns false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(nopHandler{}))
}

// Set replaces the shared logger. A nil logger restores silence.
func Set(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	current.Store(l)
}

// Get returns the shared logger. Never nil.
func Get() *slog.Logger {
	return current.Load()
}
