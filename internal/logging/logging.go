// Package logging builds the charmbracelet/log loggers shared by the engine,
// the credential resolver and the CLI.
package logging

import (
	"io"
	"strings"

	"github.com/bundlekit/bundlekit/internal/branding"
	"github.com/charmbracelet/log"
)

// DefaultLevel is used when no level, or an unknown one, is configured.
const DefaultLevel = log.WarnLevel

// New returns a logger writing to w at the named level, prefixed with the
// CLI name.
func New(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: branding.CLIName(),
		Level:  ParseLevel(level),
	})
}

// ParseLevel maps a level name to a log.Level, falling back to DefaultLevel.
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return DefaultLevel
	}
	return lvl
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
