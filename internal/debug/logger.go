// Package debug writes development logs to ~/.pixelmuse/debug.log so they never
// interfere with the terminal UI.
package debug

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/madhoundes/pixelmuse/pkg/config"
)

// DebugLogger manages debug output using Go's standard logging
type DebugLogger struct {
	logger  *log.Logger
	logFile io.WriteCloser
}

// NewDebugLogger creates a logger appending to debug.log in the pixelmuse directory
func NewDebugLogger() *DebugLogger {
	if err := config.EnsureHomeDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to create pixelmuse directory: %v\n", err)
	}

	var out io.WriteCloser = os.Stderr
	if path, err := LogPath(); err == nil {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			out = f
		}
	}

	d := NewWriterLogger(out)
	d.logger.Println("=== Debug session started ===")
	return d
}

// NewWriterLogger creates a logger writing to w. Close closes w unless it is stderr.
func NewWriterLogger(w io.WriteCloser) *DebugLogger {
	return &DebugLogger{
		logger:  log.New(w, "[DEBUG] ", log.LstdFlags|log.Lshortfile),
		logFile: w,
	}
}

// LogPath returns the path of debug.log
func LogPath() (string, error) {
	dir, err := config.HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "debug.log"), nil
}

// Log adds a message
func (d *DebugLogger) Log(format string, args ...interface{}) {
	_ = d.logger.Output(3, fmt.Sprintf(format, args...))
}

// Close closes the debug log file
func (d *DebugLogger) Close() {
	d.logger.Println("=== Debug session ended ===")

	if d.logFile != nil && d.logFile != os.Stderr {
		if err := d.logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to close debug log file: %v\n", err)
		}
	}
}

var (
	mu                sync.Mutex
	globalDebugLogger *DebugLogger
)

// DebugLog logs a message to the global debug logger, if one is installed
func DebugLog(format string, args ...interface{}) {
	mu.Lock()
	l := globalDebugLogger
	mu.Unlock()
	if l != nil {
		l.Log(format, args...)
	}
}

// InitDebugLogger installs the file-backed global debug logger
func InitDebugLogger() *DebugLogger {
	return SetLogger(NewDebugLogger())
}

// SetLogger installs l as the global logger and returns it. A nil l disables logging.
func SetLogger(l *DebugLogger) *DebugLogger {
	mu.Lock()
	defer mu.Unlock()
	globalDebugLogger = l
	return l
}
