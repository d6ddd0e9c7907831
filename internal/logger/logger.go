// Package logger wraps zerolog for the compiler and the CLI. Diagnostics go
// to stderr by default so artifacts written to stdout stay clean.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger wraps zerolog to provide a small API for the pipeline.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.WarnLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.Kitchen
		output = console
	}

	return &Logger{base: zerolog.New(output).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}
	return &Logger{base: builder.Logger()}
}

// With returns a derived logger carrying a single string field.
func (l *Logger) With(key, value string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Str(key, value).Logger()}
}

// ForTarget scopes entries to one provider and, when mode is set, one theme mode.
func (l *Logger) ForTarget(providerID, mode string) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.base.With().Str("provider", providerID)
	if mode != "" {
		ctx = ctx.Str("mode", mode)
	}
	return &Logger{base: ctx.Logger()}
}

// DebugEnabled reports whether debug entries are written.
func (l *Logger) DebugEnabled() bool {
	return l != nil && l.base.GetLevel() <= zerolog.DebugLevel
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
