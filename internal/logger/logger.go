package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Options controls how log lines are presented
type Options struct {
	NoColor bool
	Level   string
}

// New creates a console logger writing to w.
// An unknown level falls back to info.
func New(w io.Writer, opts Options) zerolog.Logger {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    opts.NoColor,
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
