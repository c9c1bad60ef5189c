package logger

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

type Logger = *slog.Logger

// New returns a colored slog logger. Verbose lowers the level to debug.
func New(w io.Writer, verbose, color bool) Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !color,
	}))
}
