package structural

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// component is a node in the file tree; files and directories are uniform
type component interface {
	Search(w io.Writer, keyword string)
}

type leafFile struct {
	name string
}

func (f *leafFile) Search(w io.Writer, keyword string) {
	fmt.Fprintf(w, "searching for %q in file %s\n", keyword, f.name)
}

type directory struct {
	name     string
	children []component
}

func (d *directory) Add(c component) {
	d.children = append(d.children, c)
}

// Search recurses into every child, treating files and directories alike
func (d *directory) Search(w io.Writer, keyword string) {
	fmt.Fprintf(w, "searching for %q in directory %s\n", keyword, d.name)
	for _, child := range d.children {
		child.Search(w, keyword)
	}
}

// NewCompositeDemo creates the composite demo
func NewCompositeDemo() catalog.Demo {
	return catalog.New(
		"composite",
		catalog.GroupStructural,
		"Searches a file tree where directories and files share one interface",
		func(w io.Writer) {
			root := &directory{name: "src"}
			root.Add(&leafFile{name: "main.go"})

			sub := &directory{name: "pkg"}
			sub.Add(&leafFile{name: "catalog.go"})
			sub.Add(&leafFile{name: "demo.go"})
			root.Add(sub)

			root.Search(w, "Register")
		},
	)
}
