package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New creates a structured zerolog.Logger tagged with the component name.
// Unknown levels fall back to info.
func New(component, level string) zerolog.Logger {
	return NewWithWriter(os.Stdout, component, level)
}

// NewWithWriter is New writing to w.
func NewWithWriter(w io.Writer, component, level string) zerolog.Logger {
	ctx := zerolog.New(w).With().Timestamp()
	if component != "" {
		ctx = ctx.Str("component", component)
	}
	logger := ctx.Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return logger.Level(lvl)
}
