package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger. Timestamps use "HH:MM:SS.ms" so that
// sweep rows logged in quick succession stay distinguishable; level is
// LogInfo unless --verbose raised it to LogDebug.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress measures one long-running step such as a sweep and
// reports it as a single Info line once the step finishes. Debug lines from
// the solver go through the same logger, so the timing line closes the block.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress starts the clock for a step logged to l.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Solved network (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
