// Package logging configures stepkit's loggers on top of charmbracelet/log.
//
// All log output goes to stderr; stdout is reserved for command output.
// Call Setup once before New so child loggers inherit the level and formatter.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

const (
	LevelDebug = log.DebugLevel
	LevelInfo  = log.InfoLevel
	LevelWarn  = log.WarnLevel
	LevelError = log.ErrorLevel
)

// Setup configures the default logger. quiet wins over verbose.
func Setup(verbose, quiet, jsonFormat bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.ErrorLevel
	}

	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	if jsonFormat {
		log.SetFormatter(log.JSONFormatter)
	} else {
		log.SetFormatter(log.TextFormatter)
	}
}

// New returns a logger with the given component prefix.
func New(component string) *log.Logger {
	return log.WithPrefix(component)
}

// SetOutput overrides the default logger's writer. Used by tests.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}
