package behavioral_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/patternplay/patternplay/pkg/patterns/behavioral"
)

func TestDeveloper_CycleReturnsToSleepingAfterFourAdvances(t *testing.T) {
	dev := behavioral.NewDeveloper()
	assert.Equal(t, behavioral.ActivitySleeping, dev.Activity())

	for i := 0; i < 4; i++ {
		dev.Advance()
	}

	assert.Equal(t, behavioral.ActivitySleeping, dev.Activity())
}

func TestDeveloper_CycleOrder(t *testing.T) {
	dev := behavioral.NewDeveloper()

	want := []behavioral.Activity{
		behavioral.ActivitySleeping,
		behavioral.ActivityTraining,
		behavioral.ActivityCoding,
		behavioral.ActivityReading,
		behavioral.ActivitySleeping,
	}

	for i, activity := range want {
		assert.Equalf(t, activity, dev.Activity(), "step %d", i)
		dev.Advance()
	}
}

func TestDeveloper_StateAfterTenAdvances(t *testing.T) {
	// Direct simulation rather than modular arithmetic: ten advances from
	// Sleeping land on Coding (two steps past the cycle boundary).
	dev := behavioral.NewDeveloper()
	for i := 0; i < 10; i++ {
		dev.Advance()
	}

	assert.Equal(t, behavioral.ActivityCoding, dev.Activity())
}

func TestStateDemo_PrintsTenIterationsFromSleeping(t *testing.T) {
	var buf bytes.Buffer
	behavioral.NewStateDemo().Run(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 10)
	assert.Equal(t, "developer is Sleeping", lines[0])
	assert.Equal(t, "developer is Training", lines[1])
	assert.Equal(t, "developer is Training", lines[9])
}
