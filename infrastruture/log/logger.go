// Package log provides a prefixed, colored leveled logger.
package log

import (
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"sync"
)

var (
	ErrNilWriter   = errors.New("logger writer is nil")
	ErrEmptyPrefix = errors.New("logger prefix is empty")
)

const (
	levelInfo    = "INFO"
	levelWarning = "WARNING"
	levelError   = "ERROR"

	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorReset  = "\033[0m"
)

// Logger writes lines of the form "[PREFIX] [LEVEL] message". The prefix is
// painted in the logger's color, warnings in yellow and errors in red.
type Logger struct {
	prefix string
	color  string
	out    *stdlog.Logger
	mu     sync.Mutex
}

// New creates a logger writing to w.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	return &Logger{
		prefix: prefix,
		color:  color,
		out:    stdlog.New(w, "", stdlog.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write(levelInfo, "", msg)
}

// Warning logs a message in yellow.
func (l *Logger) Warning(msg string) {
	l.write(levelWarning, colorYellow, msg)
}

// Error logs a message in red.
func (l *Logger) Error(msg string) {
	l.write(levelError, colorRed, msg)
}

func (l *Logger) write(level, levelColor, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tag := fmt.Sprintf("[%s]", level)
	if levelColor != "" {
		tag = levelColor + tag + colorReset
	}
	l.out.Printf("%s[%s]%s %s %s", l.color, l.prefix, colorReset, tag, msg)
}
