// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup initializes the global logger. Pretty output writes human-readable
// console lines; otherwise lines are JSON.
func Setup(w io.Writer, pretty bool) {
	if w == nil {
		w = os.Stderr
	}
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// SetVerbosity maps CLI flags to a global log level: quiet shows errors
// only, each verbose step lowers the threshold (1 = debug, 2+ = trace).
// Quiet wins when both are given.
func SetVerbosity(verbose int, quiet bool) {
	switch {
	case quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case verbose >= 2:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case verbose == 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
