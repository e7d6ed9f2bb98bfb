package creational

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// node is a filesystem entry that can clone itself
type node interface {
	Print(w io.Writer, indent string)
	Clone() node
}

type file struct {
	name string
}

func (f *file) Print(w io.Writer, indent string) {
	fmt.Fprintf(w, "%s%s\n", indent, f.name)
}

func (f *file) Clone() node {
	return &file{name: f.name + "_copy"}
}

type folder struct {
	name     string
	children []node
}

func (d *folder) Print(w io.Writer, indent string) {
	fmt.Fprintf(w, "%s%s/\n", indent, d.name)
	for _, child := range d.children {
		child.Print(w, indent+"  ")
	}
}

// Clone deep-copies the folder and everything below it
func (d *folder) Clone() node {
	clone := &folder{name: d.name + "_copy"}
	for _, child := range d.children {
		clone.children = append(clone.children, child.Clone())
	}
	return clone
}

// NewPrototypeDemo creates the prototype demo
func NewPrototypeDemo() catalog.Demo {
	return catalog.New(
		"prototype",
		catalog.GroupCreational,
		"Deep-copies a folder tree through each node's own Clone",
		func(w io.Writer) {
			tree := &folder{
				name: "project",
				children: []node{
					&file{name: "main.go"},
					&folder{
						name:     "pkg",
						children: []node{&file{name: "catalog.go"}},
					},
				},
			}

			fmt.Fprintln(w, "original tree:")
			tree.Print(w, "  ")

			clone := tree.Clone()
			fmt.Fprintln(w, "cloned tree:")
			clone.Print(w, "  ")
		},
	)
}
