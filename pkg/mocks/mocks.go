// Package mocks provides mock implementations of interfaces for testing.
// These follow Go best practices for test doubles.
package mocks

import (
	"fmt"
	"io"
	"sync"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// MockDemo is a scripted catalog.Demo that records how often it ran
type MockDemo struct {
	mu          sync.Mutex
	name        string
	group       catalog.Group
	description string
	trace       []string
	runCount    int
}

// NewMockDemo creates a mock demo that writes the given trace lines on Run
func NewMockDemo(name string, group catalog.Group, trace ...string) *MockDemo {
	return &MockDemo{
		name:        name,
		group:       group,
		description: fmt.Sprintf("mock demo %s", name),
		trace:       trace,
	}
}

// Name implements catalog.Demo
func (m *MockDemo) Name() string { return m.name }

// Group implements catalog.Demo
func (m *MockDemo) Group() catalog.Group { return m.group }

// Description implements catalog.Demo
func (m *MockDemo) Description() string { return m.description }

// Run writes the scripted trace and bumps the run counter
func (m *MockDemo) Run(w io.Writer) {
	m.mu.Lock()
	m.runCount++
	m.mu.Unlock()

	for _, line := range m.trace {
		fmt.Fprintln(w, line)
	}
}

// RunCount returns how many times Run was called
func (m *MockDemo) RunCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runCount
}
