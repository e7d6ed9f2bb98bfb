// Package structural contains the structural design-pattern demos
package structural

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// Computer is the interface the client expects
type Computer interface {
	InsertIntoLightningPort(w io.Writer)
}

type mac struct{}

func (m *mac) InsertIntoLightningPort(w io.Writer) {
	fmt.Fprintln(w, "lightning connector plugged into mac")
}

// windowsMachine exposes an incompatible USB port
type windowsMachine struct{}

func (m *windowsMachine) insertIntoUSBPort(w io.Writer) {
	fmt.Fprintln(w, "USB connector plugged into windows machine")
}

// windowsAdapter converts the lightning call into a USB one
type windowsAdapter struct {
	machine *windowsMachine
}

func (a *windowsAdapter) InsertIntoLightningPort(w io.Writer) {
	fmt.Fprintln(w, "adapter converts lightning signal to USB")
	a.machine.insertIntoUSBPort(w)
}

// NewAdapterDemo creates the adapter demo
func NewAdapterDemo() catalog.Demo {
	return catalog.New(
		"adapter",
		catalog.GroupStructural,
		"Lets a lightning client charge a USB-only machine through an adapter",
		func(w io.Writer) {
			machines := []Computer{
				&mac{},
				&windowsAdapter{machine: &windowsMachine{}},
			}

			for _, m := range machines {
				m.InsertIntoLightningPort(w)
			}
		},
	)
}
