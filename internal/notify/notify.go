// Package notify is the user-facing notification sink. Notifications are
// best effort: implementations never fail the caller.
package notify

import (
	"fmt"
	"io"
	"time"
)

// Notifier displays a transient message to the user.
type Notifier interface {
	Notify(message string, duration time.Duration)
}

// Writer prints notifications to an output stream. The duration is
// ignored; terminal output has no dismissal.
type Writer struct {
	Out io.Writer
}

// NewWriter returns a Notifier printing to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{Out: out}
}

func (w *Writer) Notify(message string, _ time.Duration) {
	if w.Out == nil {
		return
	}

	_, _ = fmt.Fprintln(w.Out, message)
}

// Discard drops every notification.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Notify(string, time.Duration) {}
