// Package obslog provides the console logger shared by every long-lived
// component of the puzzle server, following the teacher pack's
// zerolog-with-caller convention.
package obslog

import (
	"os"

	"github.com/rs/zerolog"
	logger "github.com/rs/zerolog/log"
)

// Log is the process-wide structured logger. Components attach their own
// fields with .With().Str("component", ...).Logger() rather than creating
// independent loggers.
var Log = logger.With().Caller().Logger().Output(zerolog.ConsoleWriter{Out: os.Stderr})

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

// For returns a child logger tagged with the owning component's name, used
// by the HTTP façade, the driver and the shared-state layer so log lines
// can be filtered per subsystem.
func For(component string) zerolog.Logger {
	return Log.With().Str("component", component).Logger()
}
