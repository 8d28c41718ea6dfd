// Package telemetry supplies the structured logger threaded through the
// compiler and resolver, grounded on the lacquerai-lacquer teacher's
// rs/zerolog usage: an injectable *zerolog.Logger defaulting to a no-op
// sink so library consumers pay nothing unless they opt in.
package telemetry

import (
	"io"

	"github.com/rs/zerolog"
)

// Nop is the default logger: every call is a no-op.
func Nop() zerolog.Logger { return zerolog.Nop() }

// New builds a human-friendly console logger writing to w, for CLI use.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
}
