package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// L is the process-wide logger. Init replaces it with a configured one.
var L = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

// Init configures the global logger with the requested level.
func Init(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	L = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		Level(lvl).
		With().Timestamp().Logger()
}
