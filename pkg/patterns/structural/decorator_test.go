package structural_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/patternplay/patternplay/pkg/patterns/structural"
)

func TestDecorate_AppliesToppingsInOrder(t *testing.T) {
	got := structural.Decorate("veggie pizza",
		structural.WithCheese, structural.WithTomato, structural.WithOlives)

	assert.Equal(t, "veggie pizza + extra cheese + tomato + olives", got)
}

func TestDecorate_NoToppingsReturnsBase(t *testing.T) {
	assert.Equal(t, "veggie pizza", structural.Decorate("veggie pizza"))
}

func TestDecorate_OrderMatters(t *testing.T) {
	a := structural.Decorate("base", structural.WithCheese, structural.WithTomato)
	b := structural.Decorate("base", structural.WithTomato, structural.WithCheese)

	assert.NotEqual(t, a, b)
}

func TestProxyDemo_RejectsAfterRateLimit(t *testing.T) {
	var buf bytes.Buffer
	structural.NewProxyDemo().Run(&buf)

	out := buf.String()
	assert.Contains(t, out, "application serves /app/status")
	assert.Contains(t, out, "rate limit exceeded")
	assert.Contains(t, out, "status: 403")
}
