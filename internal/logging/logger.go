package logging

import (
	"io"
	"log/slog"
	"os"

	charm "github.com/charmbracelet/log"
	"golang.org/x/term"
)

// New creates a configured application logger.
// It writes to Stderr so stdout stays reserved for analyses and JSON output.
// It standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewPretty returns a colored logger backed by charmbracelet/log when
// stderr is a terminal, and New otherwise.
func NewPretty(level slog.Level) *slog.Logger {
	if !IsTerminal(os.Stderr) {
		return New(level)
	}
	handler := charm.NewWithOptions(os.Stderr, charm.Options{
		Level:           charm.Level(level),
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Formatter:       charm.TextFormatter,
	})
	return slog.New(handler)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
