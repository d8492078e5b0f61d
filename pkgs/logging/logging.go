// Package logging configures structured logging for the CLI using zerolog.
// The core pipeline packages stay pure and never log.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Verbose lowers the level from info to debug.
	Verbose bool
	// NoColor disables the console writer's coloring.
	NoColor bool
}

// New builds a console logger for interactive use.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: out, NoColor: cfg.NoColor, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
