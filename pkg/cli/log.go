package cli

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns a human-readable zerolog logger. Debug lowers the level
// so per-stage pipeline logs show up.
func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
