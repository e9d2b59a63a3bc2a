// Package logger writes leveled logs to a file so nothing reaches the
// terminal the editor draws on.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// EnvPath enables logging when no -log flag is given.
const EnvPath = "FENNEC_LOG"

var (
	mu       sync.Mutex
	instance *Logger
)

// Logger provides TUI-safe logging functionality
type Logger struct {
	fileLogger *log.Logger
	logFile    *os.File
	mu         sync.Mutex
}

// Init opens path for appending and installs it as the process-wide logger.
// An empty path installs a logger that discards everything.
func Init(path string) error {
	l, err := newLogger(path)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if instance != nil && instance.logFile != nil {
		instance.logFile.Close()
	}
	instance = l
	return nil
}

func newLogger(path string) (*Logger, error) {
	if path == "" {
		return &Logger{fileLogger: log.New(io.Discard, "", 0)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{
		fileLogger: log.New(f, "", log.LstdFlags|log.Lshortfile),
		logFile:    f,
	}, nil
}

func current() *Logger {
	mu.Lock()
	defer mu.Unlock()
	return instance
}

// Info logs an info message
func Info(format string, args ...any) {
	if l := current(); l != nil {
		l.log("INFO", format, args...)
	}
}

// Error logs an error message
func Error(format string, args ...any) {
	if l := current(); l != nil {
		l.log("ERROR", format, args...)
	}
}

// Debug logs a debug message
func Debug(format string, args ...any) {
	if l := current(); l != nil {
		l.log("DEBUG", format, args...)
	}
}

func (l *Logger) log(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	message := fmt.Sprintf(format, args...)
	// Depth 3 reports the caller of Info/Error/Debug.
	l.fileLogger.Output(3, fmt.Sprintf("[%s] %s", level, message))
}

// Writer returns the destination of the process-wide logger, for handing to
// other libraries. It is io.Discard when logging is off.
func Writer() io.Writer {
	l := current()
	if l == nil {
		return io.Discard
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fileLogger.Writer()
}

// Close closes the log file
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		return nil
	}
	var err error
	if instance.logFile != nil {
		err = instance.logFile.Close()
	}
	instance = nil
	return err
}

// SetOutput allows changing the output destination (useful for testing)
func SetOutput(w io.Writer) {
	if l := current(); l != nil {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.fileLogger.SetOutput(w)
	}
}
