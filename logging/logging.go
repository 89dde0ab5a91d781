// Package logging holds the error-log sink the bank writes recoverable
// failures to. A failure to log must never abort the business operation
// that triggered it, so none of the sinks here return errors.
package logging

import (
	"log"
	"os"
	"sync"
)

// ErrorLogger records an error condition. Implementations swallow their
// own I/O failures.
type ErrorLogger interface {
	LogError(message string)
}

// FileLogger appends error messages to a file, creating it on first use.
type FileLogger struct {
	mu     sync.Mutex
	path   string
	logger *log.Logger
	file   *os.File
}

func NewFileLogger(path string) *FileLogger {
	return &FileLogger{path: path}
}

func (l *FileLogger) LogError(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logger == nil {
		f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Printf("logging: cannot open %s: %v (dropping: %s)", l.path, err, message)
			return
		}
		l.file = f
		l.logger = log.New(f, "", log.Ldate|log.Ltime)
	}
	l.logger.Printf("ERROR: %s", message)
}

// Close releases the underlying file. Further LogError calls reopen it.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.logger = nil
	return err
}

// Discard drops every message. Useful in tests.
type Discard struct{}

func (Discard) LogError(message string) {}

// Stderr writes error messages to standard error through the stdlib
// logger.
type Stderr struct{}

func (Stderr) LogError(message string) {
	log.Printf("ERROR: %s", message)
}
