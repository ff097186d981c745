package log

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// zerologProvider is the default LoggerProvider, writing JSON lines to stderr.
type zerologProvider struct {
	root zerolog.Logger
}

func newZerologProvider() *zerologProvider {
	return newZerologProviderTo(os.Stderr)
}

func newZerologProviderTo(w io.Writer) *zerologProvider {
	root := zerolog.New(w).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	return &zerologProvider{root: root}
}

// NewZerologProvider returns a LoggerProvider writing zerolog JSON to w.
func NewZerologProvider(w io.Writer) LoggerProvider {
	return newZerologProviderTo(w)
}

func (p *zerologProvider) GetLogger() Logger {
	return &zerologLogger{logger: p.root}
}

func (p *zerologProvider) GetLoggerWithName(name string) Logger {
	return &zerologLogger{logger: p.root.With().Str("component", name).Logger()}
}

func (p *zerologProvider) SetLevel(level Level) {
	p.root = p.root.Level(toZerologLevel(level))
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

type zerologLogger struct {
	logger zerolog.Logger
}

func (l *zerologLogger) Debug(msg string, fields ...any) { l.emit(l.logger.Debug(), msg, fields) }
func (l *zerologLogger) Info(msg string, fields ...any)  { l.emit(l.logger.Info(), msg, fields) }
func (l *zerologLogger) Warn(msg string, fields ...any)  { l.emit(l.logger.Warn(), msg, fields) }
func (l *zerologLogger) Error(msg string, fields ...any) { l.emit(l.logger.Error(), msg, fields) }

func (l *zerologLogger) With(fields ...any) Logger {
	ctx := l.logger.With()
	for i := 0; i+1 < len(fields); i += 2 {
		ctx = ctx.Interface(fieldKey(fields[i]), fields[i+1])
	}
	return &zerologLogger{logger: ctx.Logger()}
}

// emit consumes fields as alternating key-value pairs. Error values marshal
// through zerolog's error handling so stack traces survive.
func (l *zerologLogger) emit(event *zerolog.Event, msg string, fields []any) {
	for i := 0; i+1 < len(fields); i += 2 {
		key := fieldKey(fields[i])
		switch v := fields[i+1].(type) {
		case error:
			event = event.AnErr(key, v)
		default:
			event = event.Interface(key, v)
		}
	}
	if len(fields)%2 != 0 {
		event = event.Interface("field", fields[len(fields)-1])
	}
	event.Msg(msg)
}

func fieldKey(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
