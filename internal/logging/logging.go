// Package logging provides the engine's process-wide log sink
// registry: a mutex-guarded list of structured loggers that every
// write fans out to. This mirrors the original engine's Output-vector
// design, backed here by log/slog rather than hand-rolled severity
// formatting.
package logging

import (
	"log/slog"
	"os"
	"sync"
)

var (
	mu    sync.Mutex
	sinks []*slog.Logger
)

// Init replaces the sink registry. Typically called once at startup
// with a stderr sink and a log-file sink (see runtimepath.LogPath).
func Init(loggers ...*slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	sinks = loggers
}

// NewFileSink opens path for append (creating it if needed) and wraps
// it in a text-handler slog.Logger.
func NewFileSink(path string) (*slog.Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(f, nil)), nil
}

// StderrSink returns a text-handler slog.Logger writing to stderr.
func StderrSink() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// Info fans out an info-level message to every registered sink.
func Info(msg string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	for _, s := range sinks {
		s.Info(msg, args...)
	}
}

// Error fans out an error-level message to every registered sink.
func Error(msg string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	for _, s := range sinks {
		s.Error(msg, args...)
	}
}
