package behavioral_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/patternplay/patternplay/pkg/patterns/behavioral"
)

func TestReportingChain_ImportantReachesEmailAndSMSOnly(t *testing.T) {
	chain := behavioral.NewReportingChain()

	var buf bytes.Buffer
	chain.Notify(&buf, "disk usage above 80%", behavioral.PriorityImportant)

	out := buf.String()
	assert.Contains(t, out, "sending email")
	assert.Contains(t, out, "sending SMS")
	assert.NotContains(t, out, "simple report")
}

func TestReportingChain_RoutineReachesEmailOnly(t *testing.T) {
	chain := behavioral.NewReportingChain()

	var buf bytes.Buffer
	chain.Notify(&buf, "nightly batch finished", behavioral.PriorityRoutine)

	out := buf.String()
	assert.Contains(t, out, "sending email")
	assert.NotContains(t, out, "sending SMS")
	assert.NotContains(t, out, "simple report")
}

func TestReportingChain_AsSoonAsPossibleReachesEveryHandler(t *testing.T) {
	chain := behavioral.NewReportingChain()

	var buf bytes.Buffer
	chain.Notify(&buf, "production database down", behavioral.PriorityAsSoonAsPossible)

	out := buf.String()
	assert.Contains(t, out, "sending email")
	assert.Contains(t, out, "sending SMS")
	assert.Contains(t, out, "writing simple report")
}

func TestPriority_String(t *testing.T) {
	assert.Equal(t, "routine", behavioral.PriorityRoutine.String())
	assert.Equal(t, "important", behavioral.PriorityImportant.String())
	assert.Equal(t, "asSoonAsPossible", behavioral.PriorityAsSoonAsPossible.String())
}
