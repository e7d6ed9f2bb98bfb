package behavioral

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/patternplay/patternplay/pkg/catalog"
)

// Observer receives events published by an Item
type Observer interface {
	OnUpdate(w io.Writer, event string)
}

// Item is the subject. Subscribers live in an explicit id-keyed map with a
// stable attach order, so notification order is deterministic and any
// subscriber (including the first attached) can be removed.
type Item struct {
	name      string
	order     []string
	observers map[string]Observer
}

// NewItem creates a subject with no observers
func NewItem(name string) *Item {
	return &Item{
		name:      name,
		observers: make(map[string]Observer),
	}
}

// Attach registers an observer and returns its subscription id
func (i *Item) Attach(o Observer) string {
	id := uuid.NewString()
	i.observers[id] = o
	i.order = append(i.order, id)
	return id
}

// Detach removes the subscription with the given id
func (i *Item) Detach(id string) {
	if _, ok := i.observers[id]; !ok {
		return
	}
	delete(i.observers, id)
	for idx, oid := range i.order {
		if oid == id {
			i.order = append(i.order[:idx], i.order[idx+1:]...)
			break
		}
	}
}

// ObserverCount returns the number of active subscriptions
func (i *Item) ObserverCount() int {
	return len(i.order)
}

// Publish notifies every active observer in attach order
func (i *Item) Publish(w io.Writer, event string) {
	for _, id := range i.order {
		i.observers[id].OnUpdate(w, fmt.Sprintf("%s: %s", i.name, event))
	}
}

// Customer is a named observer that prints received events
type Customer struct {
	Name string
}

// OnUpdate implements Observer
func (c *Customer) OnUpdate(w io.Writer, event string) {
	fmt.Fprintf(w, "notifying %s about %s\n", c.Name, event)
}

// NewObserverDemo creates the observer demo
func NewObserverDemo() catalog.Demo {
	return catalog.New(
		"observer",
		catalog.GroupBehavioral,
		"Publishes item events to an id-keyed set of subscribed customers",
		func(w io.Writer) {
			shirt := NewItem("nike shirt")

			first := shirt.Attach(&Customer{Name: "ravi"})
			shirt.Attach(&Customer{Name: "mira"})

			shirt.Publish(w, "back in stock")

			fmt.Fprintln(w, "ravi unsubscribes")
			shirt.Detach(first)

			shirt.Publish(w, "on sale")
		},
	)
}
