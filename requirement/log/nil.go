package log

import "context"

// Discard drops every entry.
var Discard Logger = discard{}

type discard struct{}

// NewNop returns Discard.
//
//nolint:ireturn
func NewNop() Logger {
	return Discard
}

func (discard) Log(context.Context, Level, string, ...Field) {}

//nolint:ireturn
func (d discard) With(...Field) Logger { return d }

//nolint:ireturn
func (d discard) WithGroup(string) Logger { return d }

func (discard) Enabled(Level) bool { return false }

func (discard) Sync(context.Context) error { return nil }
