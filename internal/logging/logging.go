// Package logging constructs the console logger used across metagrate.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console-writer logger at the given level.
// Level precedence (highest to lowest):
//  1. explicit level string ("trace".."error")
//  2. debug flag
//  3. default (info)
//
// An unrecognized level string falls back to info.
func New(level string, debug bool) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return newLogger(console, level, debug)
}

// NewWithOutput is New writing plain (uncolored) text to w; used by tests
// to capture output.
func NewWithOutput(w io.Writer, level string, debug bool) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	return newLogger(console, level, debug)
}

func newLogger(console zerolog.ConsoleWriter, level string, debug bool) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if debug {
		lvl = zerolog.DebugLevel
	}
	if level != "" {
		if parsed, err := zerolog.ParseLevel(level); err == nil {
			lvl = parsed
		}
	}
	return zerolog.New(console).Level(lvl).With().Timestamp().Logger()
}
