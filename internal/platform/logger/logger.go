package logger

import (
	"log/slog"
	"os"
)

// New returns the process-wide structured logger. Text output on stderr keeps
// the terminal UI's stdout clean.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// Discard returns a logger that drops everything; handy in tests.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
