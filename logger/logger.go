// Package logger provides the shared zerolog logger used across the passes.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	logger = zerolog.New(output).With().Timestamp().Logger()
}

// Logger returns the shared logger.
func Logger() zerolog.Logger {
	return logger
}

// Set replaces the shared logger, e.g. to redirect output in tests.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable turns off all logging.
func Disable() {
	logger = zerolog.Nop()
}
