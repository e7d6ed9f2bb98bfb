package structural

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// uniform is the shared intrinsic state; players only hold a reference
type uniform struct {
	color string
}

// uniformFactory caches uniforms so each color exists once
type uniformFactory struct {
	cache map[string]*uniform
}

func newUniformFactory() *uniformFactory {
	return &uniformFactory{cache: make(map[string]*uniform)}
}

func (f *uniformFactory) Uniform(color string) *uniform {
	if u, ok := f.cache[color]; ok {
		return u
	}
	u := &uniform{color: color}
	f.cache[color] = u
	return u
}

type player struct {
	name    string
	uniform *uniform
}

// NewFlyweightDemo creates the flyweight demo
func NewFlyweightDemo() catalog.Demo {
	return catalog.New(
		"flyweight",
		catalog.GroupStructural,
		"Shares team uniforms between players through a caching factory",
		func(w io.Writer) {
			factory := newUniformFactory()

			players := []*player{
				{name: "ada", uniform: factory.Uniform("red")},
				{name: "grace", uniform: factory.Uniform("red")},
				{name: "linus", uniform: factory.Uniform("blue")},
				{name: "ken", uniform: factory.Uniform("blue")},
			}

			for _, p := range players {
				fmt.Fprintf(w, "%s wears the %s uniform\n", p.name, p.uniform.color)
			}

			fmt.Fprintf(w, "%d players share %d uniform objects\n",
				len(players), len(factory.cache))
		},
	)
}
