package progress

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/treb-toolchain/internal/usecase"
)

// SpinnerProgressReporter shows a spinner while a stage is running
type SpinnerProgressReporter struct {
	spinner *spinner.Spinner
	out     io.Writer
	stage   string
	started time.Time
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter writing to stderr
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
		out:     os.Stderr,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Done {
		r.spinner.Stop()
		if r.stage == event.Stage && !r.started.IsZero() {
			color.New(color.Faint).Fprintf(r.out, "%s done in %s\n", r.stage, time.Since(r.started).Round(time.Millisecond))
		}
		r.stage = ""
		r.started = time.Time{}
		return
	}

	if r.stage != event.Stage {
		r.stage = event.Stage
		r.started = time.Now()
	}

	if event.Spinner {
		r.spinner.Suffix = " " + event.Message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.pause(func() {
		color.New(color.FgCyan).Fprintln(r.out, message)
	})
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.pause(func() {
		color.New(color.FgRed).Fprintln(r.out, message)
	})
}

// pause stops the spinner around fn so output lines are not overwritten
func (r *SpinnerProgressReporter) pause(fn func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	fn()

	if wasActive {
		r.spinner.Start()
	}
}

var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
