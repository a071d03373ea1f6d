// Package logging configures the shared logrus logger.
// Diagnostics always go to stderr so stdout carries only program output.
package logging

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// DefaultLevel is used when no level, or an unknown level, is configured.
const DefaultLevel = log.WarnLevel

// Setup points the standard logrus logger at stderr with the given level.
// An unparsable level falls back to DefaultLevel and is reported once.
func Setup(level string) {
	SetupWithOutput(os.Stderr, level)
}

// SetupWithOutput is Setup with an explicit destination.
func SetupWithOutput(out io.Writer, level string) {
	log.SetOutput(out)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:    true,
		DisableColors:    true,
		QuoteEmptyFields: true,
	})

	if level == "" {
		log.SetLevel(DefaultLevel)
		return
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.SetLevel(DefaultLevel)
		log.WithField("level", level).Warn("unknown log level, using default")
		return
	}
	log.SetLevel(lvl)
}
