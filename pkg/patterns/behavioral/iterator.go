package behavioral

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// Iterator walks a collection without exposing its layout
type Iterator interface {
	HasNext() bool
	Next() string
}

// Collection hands out iterators over its elements
type Collection interface {
	CreateIterator() Iterator
}

type userCollection struct {
	users []string
}

func (c *userCollection) CreateIterator() Iterator {
	return &userIterator{users: c.users}
}

type userIterator struct {
	users []string
	index int
}

func (it *userIterator) HasNext() bool {
	return it.index < len(it.users)
}

func (it *userIterator) Next() string {
	user := it.users[it.index]
	it.index++
	return user
}

// NewIteratorDemo creates the iterator demo
func NewIteratorDemo() catalog.Demo {
	return catalog.New(
		"iterator",
		catalog.GroupBehavioral,
		"Walks a user collection through an iterator instead of raw indexing",
		func(w io.Writer) {
			var users Collection = &userCollection{
				users: []string{"ada", "grace", "linus"},
			}

			it := users.CreateIterator()
			for it.HasNext() {
				fmt.Fprintf(w, "visiting user %s\n", it.Next())
			}
		},
	)
}
