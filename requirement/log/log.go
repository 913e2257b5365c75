package log

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Logger receives requirement failure entries.
//
// Implementations must be safe for concurrent use; one Logger is typically
// shared by every Requirement in a process.
type Logger interface {
	Log(ctx context.Context, level Level, msg string, fields ...Field)
	With(fields ...Field) Logger
	WithGroup(name string) Logger
	Enabled(level Level) bool
	Sync(ctx context.Context) error
}

// ErrInvalidLevel is returned when a level name is not recognized.
var ErrInvalidLevel = errors.New("invalid log level")

// Level is the severity of an entry. Lower values are more severe, so a
// logger at LevelInfo emits Error, Warn and Info entries.
type Level uint8

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = [...]string{
	LevelError: "error",
	LevelWarn:  "warn",
	LevelInfo:  "info",
	LevelDebug: "debug",
}

// String returns the lower-case level name.
func (level Level) String() string {
	if !level.Valid() {
		return fmt.Sprintf("Level(%d)", uint8(level))
	}

	return levelNames[level]
}

// Valid reports whether level is one of the defined constants.
func (level Level) Valid() bool {
	return int(level) < len(levelNames)
}

// MarshalText implements encoding.TextMarshaler.
func (level Level) MarshalText() ([]byte, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, uint8(level))
	}

	return []byte(levelNames[level]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so levels can be read
// from environment variables and config files.
func (level *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*level = parsed

	return nil
}

// ParseLevel parses a case-insensitive level name. "warning" is accepted as
// an alias for "warn".
func ParseLevel(name string) (Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "warning" {
		return LevelWarn, nil
	}

	for level, candidate := range levelNames {
		if candidate == normalized {
			return Level(level), nil
		}
	}

	return LevelError, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
}

// Field is a key/value pair attached to an entry.
type Field struct {
	Key   string
	Value any
}

// Any attaches an arbitrary value.
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// String attaches a string value.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Bool attaches a boolean value.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err attaches err under the "error" key.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
