package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type LogLevel int

const (
	LevelInfo LogLevel = iota
	LevelDebug
	LevelTrace
)

type Logger struct {
	zl        zerolog.Logger
	out       io.Writer
	prefix    string
	noColor   bool
	level     LogLevel
	isVerbose bool
}

type Option func(*Logger)

func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.out = w
	}
}

// WithPrefix tags every line with a component name, e.g. "[pdfworkflow] ".
func WithPrefix(prefix string) Option {
	return func(l *Logger) {
		l.prefix = prefix
	}
}

func WithNoColor(noColor bool) Option {
	return func(l *Logger) {
		l.noColor = noColor
	}
}

func New(options ...Option) *Logger {
	l := &Logger{
		out:       os.Stderr,
		level:     LevelInfo,
		isVerbose: false,
	}

	for _, opt := range options {
		opt(l)
	}

	l.zl = l.build()
	return l
}

func (l *Logger) build() zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        l.out,
		TimeFormat: time.Kitchen,
		NoColor:    l.noColor,
	}
	ctx := zerolog.New(console).Level(zerolog.TraceLevel).With().Timestamp()
	if component := strings.TrimSpace(l.prefix); component != "" {
		ctx = ctx.Str("component", strings.Trim(component, "[]"))
	}
	return ctx.Logger()
}

// Named returns a child logger that shares the output and levels of l but
// reports under a different component name.
func (l *Logger) Named(component string) *Logger {
	child := &Logger{
		out:       l.out,
		prefix:    component,
		noColor:   l.noColor,
		level:     l.level,
		isVerbose: l.isVerbose,
	}
	child.zl = child.build()
	return child
}

func (l *Logger) SetVerbose(verbose bool) {
	l.isVerbose = verbose
}

func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
	if level >= LevelTrace {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.zl.Info().Msgf(format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	if l.isVerbose || l.level >= LevelDebug {
		l.zl.Debug().Msgf(format, args...)
	}
}

func (l *Logger) Trace(format string, args ...interface{}) {
	if l.level >= LevelTrace {
		l.zl.Trace().Msgf(format, args...)
	}
}

func (l *Logger) Fatal(format string, args ...interface{}) {
	l.zl.Fatal().Msgf(format, args...)
}
