package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.trai.ch/cbuild/internal/core/ports"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method provided by zerr.Error.
// If zerr's API changes, errors gracefully fall back to standard handling.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
}

// New creates a new Logger writing to stderr.
func New() ports.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a new Logger writing to w. Used by tests to
// capture output.
func NewWithWriter(w io.Writer) ports.Logger {
	handler := NewPrettyHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{logger: slog.New(handler)}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.logger.Warn(msg)
}

// Error logs an error, rendering the zerr cause chain hierarchically.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	// Collect messages by traversing the error chain programmatically.
	var messages []string
	current := err

	for current != nil {
		if m, ok := current.(messager); ok {
			// zerr error: get raw message without chain.
			messages = append(messages, m.Message())
			current = errors.Unwrap(current)
		} else {
			// Standard error: append full Error() and stop.
			messages = append(messages, current.Error())
			break
		}
	}

	var formattedLines []string

	for i, msg := range messages {
		lines := strings.Split(msg, "\n")

		if i == 0 {
			formattedLines = append(formattedLines, "Error: "+lines[0])
			for _, line := range lines[1:] {
				formattedLines = append(formattedLines, "       "+line)
			}
		} else {
			if i == 1 {
				formattedLines = append(formattedLines, "", "  Caused by:")
			}
			formattedLines = append(formattedLines, "    → "+lines[0])
			for _, line := range lines[1:] {
				formattedLines = append(formattedLines, "      "+line)
			}
		}
	}

	l.logger.Error(strings.Join(formattedLines, "\n"))
}
