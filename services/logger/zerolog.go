// Package logsvc provides the core.Logger implementations.
package logsvc

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trezcool/lmsadmin/core"
)

// NewZerolog returns a logger tagged with `component`: human-readable in debug, JSON otherwise.
func NewZerolog(conf *core.Config, component string, out ...io.Writer) zerolog.Logger {
	var w io.Writer = os.Stdout
	if len(out) > 0 {
		w = out[0]
	}

	level := zerolog.InfoLevel
	if conf.Debug {
		level = zerolog.DebugLevel
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: len(out) > 0}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("app", conf.AppName).
		Str("component", component).
		Logger()
}
