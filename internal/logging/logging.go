// Package logging configures the process-wide structured logger.
//
// Logs are diagnostics only and go to stderr; everything the user is meant
// to read (prompts, clean failures, the skipped report) is written to
// stdout by the packages that own it.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu    sync.RWMutex
	debug bool
	root  = newLogger(os.Stderr, false)
)

func newLogger(w io.Writer, dbg bool) *slog.Logger {
	level := slog.LevelInfo
	if dbg {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup installs a text logger writing to w. With dbg set the level is
// Debug, otherwise Info.
func Setup(w io.Writer, dbg bool) {
	mu.Lock()
	defer mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	debug = dbg
	root = newLogger(w, dbg)
	slog.SetDefault(root)
}

// DebugEnabled reports whether Setup was last called with dbg set.
func DebugEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return debug
}

// Logger returns the current root logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root
}

// New returns a logger scoped to a named component.
func New(component string) *slog.Logger {
	return Logger().With("component", component)
}
