package catalog

import (
	"fmt"
	"io"
)

// Catalog is an ordered, insert-only registry of demos.
// Registration order is presentation order; the catalog is built once at
// startup and never mutated afterwards.
type Catalog struct {
	order []Demo
	index map[string]Demo
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		index: make(map[string]Demo),
	}
}

// Register adds a demo to the catalog.
// Returns ErrDuplicateName if a demo with the same name is already present.
func (c *Catalog) Register(d Demo) error {
	if _, exists := c.index[d.Name()]; exists {
		return fmt.Errorf("demo %q: %w", d.Name(), ErrDuplicateName)
	}

	c.index[d.Name()] = d
	c.order = append(c.order, d)
	return nil
}

// Lookup returns the demo registered under name
func (c *Catalog) Lookup(name string) (Demo, bool) {
	d, ok := c.index[name]
	return d, ok
}

// Run executes a single demo by name, writing its trace to w.
// Returns ErrNotFound if no demo is registered under name.
func (c *Catalog) Run(name string, w io.Writer) error {
	d, ok := c.index[name]
	if !ok {
		return fmt.Errorf("demo %q: %w", name, ErrNotFound)
	}

	d.Run(w)
	return nil
}

// RunAll executes every demo in registration order, writing each trace to w.
// Demos are side-effect-only print sequences, so the walk never aborts.
func (c *Catalog) RunAll(w io.Writer) {
	for _, d := range c.order {
		d.Run(w)
	}
}

// Demos returns the registered demos in registration order
func (c *Catalog) Demos() []Demo {
	out := make([]Demo, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of registered demos
func (c *Catalog) Len() int {
	return len(c.order)
}
