package structural

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// Topping enhances a pizza description. Decoration is a list of functions
// applied in sequence to the base string, not a chain of wrapper types.
type Topping func(description string) string

// WithCheese adds extra cheese
func WithCheese(description string) string {
	return description + " + extra cheese"
}

// WithTomato adds tomato
func WithTomato(description string) string {
	return description + " + tomato"
}

// WithOlives adds olives
func WithOlives(description string) string {
	return description + " + olives"
}

// Decorate applies the toppings to the base description in order
func Decorate(base string, toppings ...Topping) string {
	out := base
	for _, topping := range toppings {
		out = topping(out)
	}
	return out
}

// NewDecoratorDemo creates the decorator demo
func NewDecoratorDemo() catalog.Demo {
	return catalog.New(
		"decorator",
		catalog.GroupStructural,
		"Layers pizza toppings as composed enhancement functions",
		func(w io.Writer) {
			fmt.Fprintln(w, Decorate("veggie pizza"))
			fmt.Fprintln(w, Decorate("veggie pizza", WithCheese))
			fmt.Fprintln(w, Decorate("veggie pizza", WithCheese, WithTomato, WithOlives))
		},
	)
}
