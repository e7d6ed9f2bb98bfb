// Package behavioral contains the behavioral design-pattern demos
package behavioral

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// Priority orders notification urgency levels
type Priority int

const (
	PriorityRoutine Priority = iota
	PriorityImportant
	PriorityAsSoonAsPossible
)

// String returns the human-readable level name
func (p Priority) String() string {
	switch p {
	case PriorityRoutine:
		return "routine"
	case PriorityImportant:
		return "important"
	case PriorityAsSoonAsPossible:
		return "asSoonAsPossible"
	default:
		return "unknown"
	}
}

// Notifier is one link in the notification chain.
// Each link writes the message when its own threshold is at or below the
// message level, then always forwards to the next link.
type Notifier interface {
	Notify(w io.Writer, message string, level Priority)
}

type emailNotifier struct {
	threshold Priority
	next      Notifier
}

func (n *emailNotifier) Notify(w io.Writer, message string, level Priority) {
	if level >= n.threshold {
		fmt.Fprintf(w, "sending email: %s\n", message)
	}
	if n.next != nil {
		n.next.Notify(w, message, level)
	}
}

type smsNotifier struct {
	threshold Priority
	next      Notifier
}

func (n *smsNotifier) Notify(w io.Writer, message string, level Priority) {
	if level >= n.threshold {
		fmt.Fprintf(w, "sending SMS: %s\n", message)
	}
	if n.next != nil {
		n.next.Notify(w, message, level)
	}
}

type reportNotifier struct {
	threshold Priority
	next      Notifier
}

func (n *reportNotifier) Notify(w io.Writer, message string, level Priority) {
	if level >= n.threshold {
		fmt.Fprintf(w, "writing simple report: %s\n", message)
	}
	if n.next != nil {
		n.next.Notify(w, message, level)
	}
}

// NewReportingChain builds the standard chain: email reacts to routine and
// above, SMS to important and above, the simple report only to
// asSoonAsPossible.
func NewReportingChain() Notifier {
	report := &reportNotifier{threshold: PriorityAsSoonAsPossible}
	sms := &smsNotifier{threshold: PriorityImportant, next: report}
	return &emailNotifier{threshold: PriorityRoutine, next: sms}
}

// NewChainDemo creates the chain-of-responsibility demo
func NewChainDemo() catalog.Demo {
	return catalog.New(
		"chain-of-responsibility",
		catalog.GroupBehavioral,
		"Routes messages through a chain of notifiers keyed by priority",
		func(w io.Writer) {
			chain := NewReportingChain()

			for _, msg := range []struct {
				text  string
				level Priority
			}{
				{"nightly batch finished", PriorityRoutine},
				{"disk usage above 80%", PriorityImportant},
				{"production database down", PriorityAsSoonAsPossible},
			} {
				fmt.Fprintf(w, "dispatching %s message: %s\n", msg.level, msg.text)
				chain.Notify(w, msg.text, msg.level)
			}
		},
	)
}
