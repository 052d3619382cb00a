// Package logger is the small logging abstraction shared by the cookie
// engine and the command line. Messages carry cookie names and counts,
// never cookie values.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger is implemented by every logging backend.
type Logger interface {
	Info(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Error(format string, args ...interface{})
	// Close releases the backend. It is safe to call more than once.
	Close() error
}

// StandardLogger writes level-prefixed lines through a stdlib *log.Logger.
type StandardLogger struct {
	logger *log.Logger
	closer io.Closer
}

// NewStandardLogger wraps l. Close does not touch l's writer.
func NewStandardLogger(l *log.Logger) *StandardLogger {
	return &StandardLogger{logger: l}
}

// NewConsoleLogger logs to w (usually os.Stderr) with a time prefix.
func NewConsoleLogger(w io.Writer) *StandardLogger {
	return NewStandardLogger(log.New(w, "chromecookies: ", log.LstdFlags))
}

// NewFileLogger appends to the file at path, creating it if needed. Close
// closes the file.
func NewFileLogger(path string) (*StandardLogger, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("error: cannot open log file: %w", err)
	}
	return &StandardLogger{
		logger: log.New(f, "", log.LstdFlags|log.Lmicroseconds),
		closer: f,
	}, nil
}

func (s *StandardLogger) Info(format string, args ...interface{}) {
	s.logger.Printf("[INFO] "+format, args...)
}

func (s *StandardLogger) Warning(format string, args ...interface{}) {
	s.logger.Printf("[WARNING] "+format, args...)
}

func (s *StandardLogger) Error(format string, args ...interface{}) {
	s.logger.Printf("[ERROR] "+format, args...)
}

func (s *StandardLogger) Close() error {
	if s.closer == nil {
		return nil
	}
	c := s.closer
	s.closer = nil
	return c.Close()
}

// NopLogger discards everything. The command line uses it unless --debug
// is given.
type NopLogger struct{}

func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (n *NopLogger) Info(format string, args ...interface{})    {}
func (n *NopLogger) Warning(format string, args ...interface{}) {}
func (n *NopLogger) Error(format string, args ...interface{})   {}
func (n *NopLogger) Close() error                               { return nil }

var (
	_ Logger = (*StandardLogger)(nil)
	_ Logger = (*NopLogger)(nil)
)
