// Package logging holds the logger shared by all tilegrid packages.
//
// By default nothing is logged. Applications enable output with SetLogger,
// or with Setup which routes debug output to a file under a log directory so
// it does not corrupt the terminal screen.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
)

// FileName is the log file created by Setup in debug mode
const FileName = "tilegrid.log"

// nopHandler discards all records, Enabled returning false skips formatting
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger replaces the shared logger, nil restores the silent default
// Safe for concurrent use
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the shared logger
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// Setup enables debug logging into dir/FileName and returns the open file
// With debug off the logger is silenced and the returned file is nil
func Setup(debug bool, dir string) (*os.File, error) {
	if !debug {
		SetLogger(nil)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		SetLogger(nil)
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		SetLogger(nil)
		return nil, fmt.Errorf("open log file: %w", err)
	}

	SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return f, nil
}

// Discard is a writer-backed logger for tests and tools that want output suppressed
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
