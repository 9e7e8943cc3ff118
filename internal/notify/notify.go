// Package notify defines the user-facing notification capability consumed by
// the query client and a few concrete implementations: an expiring toast
// queue, a line writer for terminals and a fan-out.
package notify

import (
	"fmt"
	"io"
	"sync"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notifier shows a message to the user.
type Notifier interface {
	Notify(message string, severity Severity)
}

// Func adapts a plain function to Notifier.
type Func func(message string, severity Severity)

func (f Func) Notify(message string, severity Severity) { f(message, severity) }

// Writer prints every notification as a single line.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (n *Writer) Notify(message string, severity Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintf(n.w, "[%s] %s\n", severity, message)
}

// Multi delivers each notification to all targets in order. Nil targets are skipped.
func Multi(targets ...Notifier) Notifier {
	return Func(func(message string, severity Severity) {
		for _, t := range targets {
			if t != nil {
				t.Notify(message, severity)
			}
		}
	})
}
