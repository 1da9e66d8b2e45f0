package commands

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// setupLogger returns a console logger on stderr. verbose forces debug level.
func setupLogger(level string, verbose bool) zerolog.Logger {
	logLevel := zerolog.WarnLevel

	switch strings.ToLower(level) {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	}

	if verbose {
		logLevel = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).Level(logLevel).With().Timestamp().Logger()
}
