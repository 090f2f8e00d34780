package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogLevel represents logging verbosity levels.
type LogLevel int

// Log level constants.
const (
	LogLevelOff LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelDebug
)

// StderrLogFile selects standard error as the log destination.
const StderrLogFile = "-"

// ParseLogLevel parses a log level string. Unknown values map to error.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none":
		return LogLevelOff
	case "info":
		return LogLevelInfo
	case "debug", "trace":
		return LogLevelDebug
	default:
		return LogLevelError
	}
}

// String returns the string representation of a log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelOff:
		return "off"
	case LogLevelInfo:
		return "info"
	case LogLevelDebug:
		return "debug"
	default:
		return "error"
	}
}

// Logger writes leveled, timestamped lines to a file or stream.
// It satisfies bdk.LogWriter.
type Logger struct {
	mu     sync.Mutex
	level  LogLevel
	out    io.Writer
	closer io.Closer
	now    func() time.Time
}

// NewLogger creates a logger writing to filePath. An empty path or
// LogLevelOff yields a logger that discards output; "-" writes to stderr.
func NewLogger(level LogLevel, filePath string) (*Logger, error) {
	logger := &Logger{level: level, now: time.Now}

	if level == LogLevelOff || filePath == "" {
		return logger, nil
	}

	if filePath == StderrLogFile {
		return NewWriterLogger(level, os.Stderr), nil
	}

	filePath, err := ExpandHome(filePath)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0o750); err != nil {
		return nil, err
	}

	// #nosec G304 -- log file path is from validated config
	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	logger.out = f
	logger.closer = f
	return logger, nil
}

// NewWriterLogger creates a logger writing to w.
func NewWriterLogger(level LogLevel, w io.Writer) *Logger {
	return &Logger{level: level, out: w, now: time.Now}
}

// Close closes the underlying log file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	l.out = nil
	return err
}

// Level returns the current log level.
func (l *Logger) Level() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) {
	l.log(LogLevelDebug, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.log(LogLevelInfo, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.log(LogLevelError, format, args...)
}

func (l *Logger) log(level LogLevel, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.level == LogLevelOff || level > l.level || l.out == nil {
		return
	}

	now := time.Now
	if l.now != nil {
		now = l.now
	}
	timestamp := now().Format("2006-01-02 15:04:05.000")
	msg := fmt.Sprintf(format, args...)

	_, _ = fmt.Fprintf(l.out, "%s [%s] %s\n", timestamp, strings.ToUpper(level.String()), msg)
}

// NullLogger returns a logger that discards all output.
func NullLogger() *Logger {
	return &Logger{level: LogLevelOff}
}
