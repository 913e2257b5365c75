package log

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
)

// logControlCharReplacer escapes control characters that can be used for log injection (CWE-117).
// Failure details often carry caller-supplied values, so every string that
// reaches the sink goes through it.
var logControlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func sanitizeLogString(s string) string {
	return logControlCharReplacer.Replace(s)
}

// GoLogger writes plain-text log lines through the standard library logger.
//
// Lines look like `[warn] message key=value key2=value2`. Groups prefix the
// keys of fields added after them with `group.`.
type GoLogger struct {
	Level  Level
	out    *stdlog.Logger
	fields []Field
	group  string
}

var _ Logger = (*GoLogger)(nil)

// NewGoLogger creates a GoLogger writing to w at the given verbosity.
// A nil writer falls back to os.Stderr.
func NewGoLogger(w io.Writer, level Level) *GoLogger {
	if w == nil {
		w = os.Stderr
	}

	return &GoLogger{
		Level: level,
		out:   stdlog.New(w, "", stdlog.LstdFlags),
	}
}

// Log writes msg with fields if level is enabled.
func (l *GoLogger) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	var sb strings.Builder

	sb.WriteString("[")
	sb.WriteString(level.String())
	sb.WriteString("] ")
	sb.WriteString(sanitizeLogString(msg))

	for _, f := range l.fields {
		writeField(&sb, "", f)
	}

	for _, f := range fields {
		writeField(&sb, l.group, f)
	}

	l.sink().Print(sb.String())
}

func writeField(sb *strings.Builder, group string, f Field) {
	sb.WriteString(" ")

	if group != "" {
		sb.WriteString(sanitizeLogString(group))
		sb.WriteString(".")
	}

	sb.WriteString(sanitizeLogString(f.Key))
	sb.WriteString("=")
	sb.WriteString(sanitizeLogString(fmt.Sprint(f.Value)))
}

// With returns a child logger carrying additional fields.
//
//nolint:ireturn
func (l *GoLogger) With(fields ...Field) Logger {
	if l == nil {
		return NewGoLogger(nil, LevelInfo).With(fields...)
	}

	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)

	for _, f := range fields {
		if l.group != "" {
			f.Key = l.group + "." + f.Key
		}

		merged = append(merged, f)
	}

	return &GoLogger{Level: l.Level, out: l.out, fields: merged, group: l.group}
}

// WithGroup returns a child logger that namespaces subsequent fields.
//
//nolint:ireturn
func (l *GoLogger) WithGroup(name string) Logger {
	if l == nil {
		return NewGoLogger(nil, LevelInfo).WithGroup(name)
	}

	group := name
	if l.group != "" && name != "" {
		group = l.group + "." + name
	} else if name == "" {
		group = l.group
	}

	return &GoLogger{Level: l.Level, out: l.out, fields: l.fields, group: group}
}

// Enabled reports whether level is within the logger's verbosity ceiling.
func (l *GoLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}

	return l.Level >= level
}

// Sync is a no-op; the standard library logger does not buffer.
func (l *GoLogger) Sync(ctx context.Context) error {
	return ctx.Err()
}

func (l *GoLogger) sink() *stdlog.Logger {
	if l.out == nil {
		return stdlog.Default()
	}

	return l.out
}
