package zap

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	logpkg "github.com/thenoobsbr/lib-requirement/requirement/log"
)

// ErrLevelNotAdjustable is returned by SetLevel on loggers wrapped with FromZap.
var ErrLevelNotAdjustable = errors.New("level is owned by the wrapped zap logger")

// Logger writes requirement entries through zap.
type Logger struct {
	base  *zap.Logger
	level *zap.AtomicLevel
}

var _ logpkg.Logger = (*Logger)(nil)

var zapLevels = [...]zapcore.Level{
	logpkg.LevelError: zapcore.ErrorLevel,
	logpkg.LevelWarn:  zapcore.WarnLevel,
	logpkg.LevelInfo:  zapcore.InfoLevel,
	logpkg.LevelDebug: zapcore.DebugLevel,
}

func toZapLevel(level logpkg.Level) zapcore.Level {
	if !level.Valid() {
		return zapcore.InfoLevel
	}

	return zapLevels[level]
}

// FromZap wraps a zap logger the caller already owns. A nil logger drops
// every entry.
func FromZap(l *zap.Logger) *Logger {
	return &Logger{base: l}
}

func (l *Logger) unwrap() *zap.Logger {
	if l == nil || l.base == nil {
		return zap.NewNop()
	}

	return l.base
}

// Log writes msg at level. Entries logged under a recording span carry
// trace_id and span_id.
func (l *Logger) Log(ctx context.Context, level logpkg.Level, msg string, fields ...logpkg.Field) {
	ce := l.unwrap().Check(toZapLevel(level), msg)
	if ce == nil {
		return
	}

	ce.Write(append(toZapFields(fields), traceFields(ctx)...)...)
}

func traceFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}

	return []zap.Field{
		zap.Stringer("trace_id", sc.TraceID()),
		zap.Stringer("span_id", sc.SpanID()),
	}
}

// With returns a child logger carrying fields.
//
//nolint:ireturn
func (l *Logger) With(fields ...logpkg.Field) logpkg.Logger {
	return l.derive(l.unwrap().With(toZapFields(fields)...))
}

// WithGroup returns a child logger nesting later fields under name.
//
//nolint:ireturn
func (l *Logger) WithGroup(name string) logpkg.Logger {
	return l.derive(l.unwrap().With(zap.Namespace(name)))
}

func (l *Logger) derive(base *zap.Logger) *Logger {
	child := &Logger{base: base}
	if l != nil {
		child.level = l.level
	}

	return child
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(level logpkg.Level) bool {
	return l.unwrap().Core().Enabled(toZapLevel(level))
}

// Level returns the most verbose level currently enabled. A logger that
// writes nothing reports LevelError.
func (l *Logger) Level() logpkg.Level {
	for _, level := range []logpkg.Level{logpkg.LevelDebug, logpkg.LevelInfo, logpkg.LevelWarn} {
		if l.Enabled(level) {
			return level
		}
	}

	return logpkg.LevelError
}

// SetLevel changes the level of a logger built with New, including every
// logger derived from it.
func (l *Logger) SetLevel(level logpkg.Level) error {
	if l == nil || l.level == nil {
		return ErrLevelNotAdjustable
	}

	if !level.Valid() {
		return logpkg.ErrInvalidLevel
	}

	l.level.SetLevel(toZapLevel(level))

	return nil
}

// Sync flushes buffered entries, giving up when ctx is done.
func (l *Logger) Sync(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)

	go func() {
		done <- l.unwrap().Sync()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

// Unwrap returns the underlying zap logger.
func (l *Logger) Unwrap() *zap.Logger {
	return l.unwrap()
}

func toZapFields(fields []logpkg.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))

	for _, f := range fields {
		switch v := f.Value.(type) {
		case error:
			if f.Key == "error" {
				out = append(out, zap.Error(v))
			} else {
				out = append(out, zap.NamedError(f.Key, v))
			}
		case string:
			out = append(out, zap.String(f.Key, v))
		case bool:
			out = append(out, zap.Bool(f.Key, v))
		default:
			out = append(out, zap.Any(f.Key, v))
		}
	}

	return out
}
