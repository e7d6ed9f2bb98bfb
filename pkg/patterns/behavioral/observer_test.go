package behavioral_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternplay/patternplay/pkg/patterns/behavioral"
)

func TestItem_DetachedObserverStopsReceiving(t *testing.T) {
	item := behavioral.NewItem("book")

	first := item.Attach(&behavioral.Customer{Name: "ravi"})
	item.Attach(&behavioral.Customer{Name: "mira"})
	require.Equal(t, 2, item.ObserverCount())

	var before bytes.Buffer
	item.Publish(&before, "back in stock")
	assert.Contains(t, before.String(), "ravi")
	assert.Contains(t, before.String(), "mira")

	// Removing the FIRST attached observer must work; the source demo's
	// removal loop skipped index 0.
	item.Detach(first)
	require.Equal(t, 1, item.ObserverCount())

	var after bytes.Buffer
	item.Publish(&after, "on sale")
	assert.NotContains(t, after.String(), "ravi")
	assert.Contains(t, after.String(), "mira")
}

func TestItem_DetachUnknownIDIsNoOp(t *testing.T) {
	item := behavioral.NewItem("book")
	item.Attach(&behavioral.Customer{Name: "mira"})

	item.Detach("not-a-subscription")
	assert.Equal(t, 1, item.ObserverCount())
}

func TestItem_PublishNotifiesInAttachOrder(t *testing.T) {
	item := behavioral.NewItem("book")
	item.Attach(&behavioral.Customer{Name: "ada"})
	item.Attach(&behavioral.Customer{Name: "grace"})
	item.Attach(&behavioral.Customer{Name: "linus"})

	var buf bytes.Buffer
	item.Publish(&buf, "restocked")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "ada")
	assert.Contains(t, lines[1], "grace")
	assert.Contains(t, lines[2], "linus")
}
