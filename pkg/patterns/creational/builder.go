package creational

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// house is the product assembled step by step
type house struct {
	windowType string
	doorType   string
	floors     int
}

// HouseBuilder assembles one kind of house part by part
type HouseBuilder interface {
	BuildWindows()
	BuildDoors()
	BuildFloors()
	House() house
}

type normalHouseBuilder struct {
	house house
}

func (b *normalHouseBuilder) BuildWindows() { b.house.windowType = "wooden window" }
func (b *normalHouseBuilder) BuildDoors()   { b.house.doorType = "wooden door" }
func (b *normalHouseBuilder) BuildFloors()  { b.house.floors = 2 }
func (b *normalHouseBuilder) House() house  { return b.house }

type iglooBuilder struct {
	house house
}

func (b *iglooBuilder) BuildWindows() { b.house.windowType = "snow window" }
func (b *iglooBuilder) BuildDoors()   { b.house.doorType = "snow door" }
func (b *iglooBuilder) BuildFloors()  { b.house.floors = 1 }
func (b *iglooBuilder) House() house  { return b.house }

// director fixes the assembly order regardless of the builder
type director struct {
	builder HouseBuilder
}

func (d *director) Construct() house {
	d.builder.BuildWindows()
	d.builder.BuildDoors()
	d.builder.BuildFloors()
	return d.builder.House()
}

// NewBuilderDemo creates the builder demo
func NewBuilderDemo() catalog.Demo {
	return catalog.New(
		"builder",
		catalog.GroupCreational,
		"Assembles different houses through one fixed construction sequence",
		func(w io.Writer) {
			for _, b := range []HouseBuilder{&normalHouseBuilder{}, &iglooBuilder{}} {
				d := &director{builder: b}
				h := d.Construct()
				fmt.Fprintf(w, "built house: %s, %s, %d floor(s)\n",
					h.windowType, h.doorType, h.floors)
			}
		},
	)
}
