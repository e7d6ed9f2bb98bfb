package structural

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// Printer is the implementation side of the bridge
type Printer interface {
	PrintFile(w io.Writer)
}

type epsonPrinter struct{}

func (p *epsonPrinter) PrintFile(w io.Writer) {
	fmt.Fprintln(w, "epson printer prints the file")
}

type hpPrinter struct{}

func (p *hpPrinter) PrintFile(w io.Writer) {
	fmt.Fprintln(w, "hp printer prints the file")
}

// workstation is the abstraction side; it varies independently of printers
type workstation interface {
	Print(w io.Writer)
	SetPrinter(p Printer)
}

type macWorkstation struct {
	printer Printer
}

func (m *macWorkstation) Print(w io.Writer) {
	fmt.Fprintln(w, "print request from mac")
	m.printer.PrintFile(w)
}

func (m *macWorkstation) SetPrinter(p Printer) { m.printer = p }

type windowsWorkstation struct {
	printer Printer
}

func (m *windowsWorkstation) Print(w io.Writer) {
	fmt.Fprintln(w, "print request from windows")
	m.printer.PrintFile(w)
}

func (m *windowsWorkstation) SetPrinter(p Printer) { m.printer = p }

// NewBridgeDemo creates the bridge demo
func NewBridgeDemo() catalog.Demo {
	return catalog.New(
		"bridge",
		catalog.GroupStructural,
		"Pairs any workstation with any printer across the abstraction bridge",
		func(w io.Writer) {
			stations := []workstation{&macWorkstation{}, &windowsWorkstation{}}
			printers := []Printer{&epsonPrinter{}, &hpPrinter{}}

			for _, station := range stations {
				for _, printer := range printers {
					station.SetPrinter(printer)
					station.Print(w)
				}
			}
		},
	)
}
