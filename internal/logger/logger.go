package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options selects where entries go and how they look. An empty Level means
// info; Writer defaults to stderr so stdout stays free for command output.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	Component     string
}

// Logger is the handle the CLI, the gallery and the filter store log through.
// A nil *Logger is valid and discards everything.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger. HumanReadable switches from JSON lines to zerolog's
// console format without colours.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	}

	fields := zerolog.New(out).Level(level).With().Timestamp()
	if opts.Component != "" {
		fields = fields.Str("component", opts.Component)
	}
	return &Logger{base: fields.Logger()}, nil
}

func parseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", name, err)
	}
	return level, nil
}

// Nop discards every entry. The gallery gets one while the alternate screen
// owns the terminal and no log file was given.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a child logger stamping fields on every entry.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	child := l.base.With().Fields(fields).Logger()
	return &Logger{base: child}
}

// With returns a child logger with one extra field.
func (l *Logger) With(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

func (l *Logger) Info(msg string)  { l.write(zerolog.InfoLevel, nil, msg) }
func (l *Logger) Debug(msg string) { l.write(zerolog.DebugLevel, nil, msg) }
func (l *Logger) Warn(msg string)  { l.write(zerolog.WarnLevel, nil, msg) }

// Error logs msg with err attached under the "error" key when err is non-nil.
func (l *Logger) Error(err error, msg string) { l.write(zerolog.ErrorLevel, err, msg) }

func (l *Logger) write(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.WithLevel(level)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
