package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/danieljhkim/twmerge/internal/config"
)

// newLogger builds the diagnostics logger. Diagnostics always go to w
// (stderr in practice) so they never mix with merged output on stdout.
func newLogger(w io.Writer, cfg config.LoggingConfig) (zerolog.Logger, error) {
	levelStr := cfg.Level
	if levelStr == "" {
		levelStr = "warn"
	}
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	switch cfg.Format {
	case "json":
		return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
	case "", "console":
		output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: color.NoColor}
		return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q: must be console or json", cfg.Format)
	}
}
