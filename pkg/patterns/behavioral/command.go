package behavioral

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// Command encapsulates a single request against a receiver
type Command interface {
	Execute(w io.Writer)
}

// device is the receiver shared by the on/off commands
type device struct {
	name string
}

func (d *device) on(w io.Writer) {
	fmt.Fprintf(w, "%s is now on\n", d.name)
}

func (d *device) off(w io.Writer) {
	fmt.Fprintf(w, "%s is now off\n", d.name)
}

type onCommand struct {
	device *device
}

func (c *onCommand) Execute(w io.Writer) { c.device.on(w) }

type offCommand struct {
	device *device
}

func (c *offCommand) Execute(w io.Writer) { c.device.off(w) }

// button is the invoker; it only knows the Command interface
type button struct {
	command Command
}

func (b *button) press(w io.Writer) {
	b.command.Execute(w)
}

// NewCommandDemo creates the command demo
func NewCommandDemo() catalog.Demo {
	return catalog.New(
		"command",
		catalog.GroupBehavioral,
		"Wraps requests as objects so invokers stay decoupled from receivers",
		func(w io.Writer) {
			tv := &device{name: "living room TV"}

			onButton := &button{command: &onCommand{device: tv}}
			offButton := &button{command: &offCommand{device: tv}}

			onButton.press(w)
			offButton.press(w)
			onButton.press(w)
		},
	)
}
