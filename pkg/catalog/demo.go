// Package catalog provides an ordered registry of runnable design-pattern demos
package catalog

import "io"

// Group classifies a demo by pattern family
type Group string

const (
	GroupBehavioral Group = "behavioral"
	GroupCreational Group = "creational"
	GroupStructural Group = "structural"
)

// Groups lists all valid groups in presentation order
func Groups() []Group {
	return []Group{GroupBehavioral, GroupCreational, GroupStructural}
}

// IsValid reports whether g is a known group
func (g Group) IsValid() bool {
	switch g {
	case GroupBehavioral, GroupCreational, GroupStructural:
		return true
	}
	return false
}

// Demo is a runnable unit demonstrating one design pattern.
// Run writes a deterministic trace to w; demos have no failure modes.
type Demo interface {
	Name() string
	Group() Group
	Description() string
	Run(w io.Writer)
}

// demo is the standard Demo implementation backed by a run function
type demo struct {
	name        string
	group       Group
	description string
	run         func(io.Writer)
}

// New creates a demo from a name, group, description and run function
func New(name string, group Group, description string, run func(io.Writer)) Demo {
	return &demo{
		name:        name,
		group:       group,
		description: description,
		run:         run,
	}
}

func (d *demo) Name() string        { return d.name }
func (d *demo) Group() Group        { return d.group }
func (d *demo) Description() string { return d.description }
func (d *demo) Run(w io.Writer)     { d.run(w) }
