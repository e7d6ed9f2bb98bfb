package creational_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternplay/patternplay/pkg/patterns/creational"
)

func teamOutputs(t *testing.T, family creational.Family) []string {
	t.Helper()

	factory, err := creational.NewTeamFactory(family)
	require.NoError(t, err)

	var outputs []string
	for _, e := range []creational.Employee{
		factory.CreateDeveloper(),
		factory.CreateTester(),
		factory.CreateManager(),
	} {
		var buf bytes.Buffer
		e.Describe(&buf)
		outputs = append(outputs, buf.String())
	}
	return outputs
}

func TestTeamFactory_BankFamilyStaysBanking(t *testing.T) {
	for _, out := range teamOutputs(t, creational.FamilyBank) {
		assert.Contains(t, out, "bank")
		assert.NotContains(t, out, "website")
	}
}

func TestTeamFactory_WebsiteFamilyStaysWebsite(t *testing.T) {
	for _, out := range teamOutputs(t, creational.FamilyWebsite) {
		assert.Contains(t, out, "website")
		assert.NotContains(t, out, "bank")
	}
}

func TestTeamFactory_UnknownFamily(t *testing.T) {
	_, err := creational.NewTeamFactory("casino")
	assert.Error(t, err)
}

func TestAbstractFactoryDemo_TraceCoversBothFamilies(t *testing.T) {
	var buf bytes.Buffer
	creational.NewAbstractFactoryDemo().Run(&buf)

	out := buf.String()
	assert.Contains(t, out, "assembling bank team")
	assert.Contains(t, out, "assembling website team")
	assert.True(t, strings.Index(out, "bank team") < strings.Index(out, "website team"),
		"bank family should be presented first")
}
