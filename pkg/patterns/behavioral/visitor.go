package behavioral

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// Shape accepts visitors without knowing what they compute
type Shape interface {
	Accept(w io.Writer, v ShapeVisitor)
}

// ShapeVisitor adds an operation over the closed set of shapes
type ShapeVisitor interface {
	VisitSquare(w io.Writer, s *square)
	VisitCircle(w io.Writer, c *circle)
	VisitRectangle(w io.Writer, r *rectangle)
}

type square struct {
	side int
}

func (s *square) Accept(w io.Writer, v ShapeVisitor) { v.VisitSquare(w, s) }

type circle struct {
	radius int
}

func (c *circle) Accept(w io.Writer, v ShapeVisitor) { v.VisitCircle(w, c) }

type rectangle struct {
	width, height int
}

func (r *rectangle) Accept(w io.Writer, v ShapeVisitor) { v.VisitRectangle(w, r) }

// areaVisitor computes areas without touching the shape types
type areaVisitor struct{}

func (v *areaVisitor) VisitSquare(w io.Writer, s *square) {
	fmt.Fprintf(w, "square area: %d\n", s.side*s.side)
}

func (v *areaVisitor) VisitCircle(w io.Writer, c *circle) {
	// pi truncated to 3 so the trace stays integer-only
	fmt.Fprintf(w, "circle area: ~%d\n", 3*c.radius*c.radius)
}

func (v *areaVisitor) VisitRectangle(w io.Writer, r *rectangle) {
	fmt.Fprintf(w, "rectangle area: %d\n", r.width*r.height)
}

// perimeterVisitor is a second operation added without editing the shapes
type perimeterVisitor struct{}

func (v *perimeterVisitor) VisitSquare(w io.Writer, s *square) {
	fmt.Fprintf(w, "square perimeter: %d\n", 4*s.side)
}

func (v *perimeterVisitor) VisitCircle(w io.Writer, c *circle) {
	fmt.Fprintf(w, "circle perimeter: ~%d\n", 2*3*c.radius)
}

func (v *perimeterVisitor) VisitRectangle(w io.Writer, r *rectangle) {
	fmt.Fprintf(w, "rectangle perimeter: %d\n", 2*(r.width+r.height))
}

// NewVisitorDemo creates the visitor demo
func NewVisitorDemo() catalog.Demo {
	return catalog.New(
		"visitor",
		catalog.GroupBehavioral,
		"Adds area and perimeter operations over shapes without changing them",
		func(w io.Writer) {
			shapes := []Shape{
				&square{side: 4},
				&circle{radius: 3},
				&rectangle{width: 2, height: 5},
			}

			for _, visitor := range []ShapeVisitor{&areaVisitor{}, &perimeterVisitor{}} {
				for _, shape := range shapes {
					shape.Accept(w, visitor)
				}
			}
		},
	)
}
