// Package cli implements the fpl command-line interface.
//
// Commands read an alternating sign matrix, given either as a literal such as
// "[[0,1,0],[1,-1,1],[0,1,0]]" or as a file, and draw its fully packed loop
// configuration or its link pattern. The CLI is built using cobra and logs
// through charmbracelet/log.
//
// # Commands
//
//   - render: write the loops or the link pattern as text, SVG, JSON, PDF, PNG or DOT
//   - link: print the link pattern
//   - show: print the matrix, the six-vertex arrows, the loops and the link pattern
//   - list: print the link pattern of every matrix of a given order
//   - browse: page through every matrix of a given order interactively
//   - serve: answer render requests over HTTP
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
//
// # Configuration
//
// Defaults for output format, orientation and SVG styling are read from
// $XDG_CONFIG_HOME/fpl/config.toml, or the file named by --config. Flags
// override the file.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at level, with timestamps formatted
// as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs the elapsed time of an operation when it is done.
// Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Listed 42 matrices (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a copy of ctx carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
