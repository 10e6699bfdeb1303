// Package cli implements the sketchboard command-line interface.
//
// Commands render documents, replay event scripts, lay out text, open the
// terminal editor and run the HTTP service. The CLI is built using cobra
// and logs through charmbracelet/log.
//
// # Commands
//
//   - render: Render a document to SVG, PNG or JSON
//   - replay: Run an event script against the controller
//   - text: Lay out a label and print its lines
//   - edit: Edit a document in the terminal
//   - serve: Run the HTTP rendering service
//   - cache: Manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchboard/pkg/errors"
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// openLogFile appends debug logs to path. The terminal editor owns the
// screen, so its logs cannot go to stderr.
func openLogFile(path string) (*log.Logger, io.Closer, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open log file")
	}
	l := newLogger(f, log.DebugLevel)
	return l, f, nil
}

// stopwatch logs the end of a command with its elapsed time.
type stopwatch struct {
	logger *log.Logger
	start  time.Time
}

func startStopwatch(l *log.Logger) stopwatch {
	return stopwatch{logger: l, start: time.Now()}
}

func (s stopwatch) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(s.start).Round(time.Millisecond))
	s.logger.Info(msg, keyvals...)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the command logger, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
