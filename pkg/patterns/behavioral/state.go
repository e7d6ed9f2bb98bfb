package behavioral

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// Activity is one state of a developer's day
type Activity string

const (
	ActivitySleeping Activity = "Sleeping"
	ActivityTraining Activity = "Training"
	ActivityCoding   Activity = "Coding"
	ActivityReading  Activity = "Reading"
)

// Developer cycles through its activities in fixed round-robin order:
// Sleeping -> Training -> Coding -> Reading -> Sleeping. There is no
// terminal state.
type Developer struct {
	activity Activity
}

// NewDeveloper creates a developer in the initial Sleeping state
func NewDeveloper() *Developer {
	return &Developer{activity: ActivitySleeping}
}

// Activity returns the current state
func (d *Developer) Activity() Activity {
	return d.activity
}

// Advance moves to the next state in the cycle
func (d *Developer) Advance() {
	switch d.activity {
	case ActivitySleeping:
		d.activity = ActivityTraining
	case ActivityTraining:
		d.activity = ActivityCoding
	case ActivityCoding:
		d.activity = ActivityReading
	case ActivityReading:
		d.activity = ActivitySleeping
	}
}

// NewStateDemo creates the state demo
func NewStateDemo() catalog.Demo {
	return catalog.New(
		"state",
		catalog.GroupBehavioral,
		"Cycles a developer through a fixed round-robin of daily activities",
		func(w io.Writer) {
			dev := NewDeveloper()

			for i := 0; i < 10; i++ {
				fmt.Fprintf(w, "developer is %s\n", dev.Activity())
				dev.Advance()
			}
		},
	)
}
