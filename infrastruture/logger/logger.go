// Package logger provides a small colored, prefixed logger.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
)

const colorReset = "\033[0m"

// ErrNilWriter is returned when no output writer is given.
var ErrNilWriter = errors.New("logger: nil writer")

// Logger writes lines of the form "[PREFIX] [LEVEL] message".
// The prefix is wrapped in the given terminal color.
type Logger struct {
	out    *log.Logger
	prefix string
}

// New creates a Logger writing to w. Color may be empty.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	tag := fmt.Sprintf("[%s]", prefix)
	if color != "" {
		tag = color + tag + colorReset
	}

	return &Logger{
		out:    log.New(w, "", log.LstdFlags),
		prefix: tag,
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write("INFO", msg)
}

// Warning logs a message about a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.write("WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write("ERROR", msg)
}

func (l *Logger) write(level, msg string) {
	l.out.Printf("%s [%s] %s", l.prefix, level, msg)
}
