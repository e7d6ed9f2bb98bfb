package creational

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// SequenceSource hands out process-wide unique sequence numbers.
// It is constructed exactly once and injected into every consumer; there is
// no hidden package-level instance.
type SequenceSource struct {
	next int
}

// NewSequenceSource creates the single shared source
func NewSequenceSource() *SequenceSource {
	return &SequenceSource{next: 1}
}

// Next returns the next sequence number
func (s *SequenceSource) Next() int {
	n := s.next
	s.next++
	return n
}

// orderService and invoiceService both depend on the injected source
type orderService struct {
	seq *SequenceSource
}

func (s *orderService) PlaceOrder(w io.Writer) {
	fmt.Fprintf(w, "order service placed order #%d\n", s.seq.Next())
}

type invoiceService struct {
	seq *SequenceSource
}

func (s *invoiceService) Issue(w io.Writer) {
	fmt.Fprintf(w, "invoice service issued invoice #%d\n", s.seq.Next())
}

// NewSingletonDemo creates the singleton demo
func NewSingletonDemo() catalog.Demo {
	return catalog.New(
		"singleton",
		catalog.GroupCreational,
		"Shares one explicitly constructed sequence source between consumers",
		func(w io.Writer) {
			seq := NewSequenceSource()

			orders := &orderService{seq: seq}
			invoices := &invoiceService{seq: seq}

			orders.PlaceOrder(w)
			invoices.Issue(w)
			orders.PlaceOrder(w)

			fmt.Fprintln(w, "both services drew from the same sequence")
		},
	)
}
