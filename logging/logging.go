// Package logging configures the workbench's log/slog logger, with two
// custom levels below slog.LevelDebug for high-volume trace detail.
package logging

import (
	"log/slog"
	"os"
)

// Custom levels below slog.LevelDebug: the workbench logs two kinds of
// high-volume detail that are noisier than "debug" but still worth
// keeping distinct so a caller can filter them independently —
// LevelPattern (one line per generated ATPG pattern) and LevelEvent (one
// line per scheduled/committed simulator event).
const (
	LevelPattern slog.Level = slog.LevelDebug - 1
	LevelEvent   slog.Level = slog.LevelDebug - 2
)

var levelNames = map[slog.Leveler]string{
	LevelPattern: "PATTERN",
	LevelEvent:   "EVENT",
}

// Default returns a logger writing to os.Stderr. json selects
// slog.JSONHandler (for the CLI's --json-logs flag); otherwise it uses
// slog.TextHandler.
func Default(level slog.Level, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				lvl := a.Value.Any().(slog.Level)
				if name, ok := levelNames[lvl]; ok {
					a.Value = slog.StringValue(name)
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
