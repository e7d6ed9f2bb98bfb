package behavioral

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// Expression is a node in a tiny arithmetic syntax tree
type Expression interface {
	Interpret() int
	String() string
}

type numberExpression struct {
	value int
}

func (e *numberExpression) Interpret() int { return e.value }
func (e *numberExpression) String() string { return fmt.Sprintf("%d", e.value) }

type addExpression struct {
	left, right Expression
}

func (e *addExpression) Interpret() int { return e.left.Interpret() + e.right.Interpret() }
func (e *addExpression) String() string {
	return fmt.Sprintf("(%s + %s)", e.left, e.right)
}

type subtractExpression struct {
	left, right Expression
}

func (e *subtractExpression) Interpret() int { return e.left.Interpret() - e.right.Interpret() }
func (e *subtractExpression) String() string {
	return fmt.Sprintf("(%s - %s)", e.left, e.right)
}

// NewInterpreterDemo creates the interpreter demo
func NewInterpreterDemo() catalog.Demo {
	return catalog.New(
		"interpreter",
		catalog.GroupBehavioral,
		"Evaluates a tiny arithmetic grammar through expression nodes",
		func(w io.Writer) {
			// ((7 + 3) - (2 + 1))
			expr := &subtractExpression{
				left:  &addExpression{left: &numberExpression{value: 7}, right: &numberExpression{value: 3}},
				right: &addExpression{left: &numberExpression{value: 2}, right: &numberExpression{value: 1}},
			}

			fmt.Fprintf(w, "interpreting %s\n", expr)
			fmt.Fprintf(w, "result: %d\n", expr.Interpret())
		},
	)
}
