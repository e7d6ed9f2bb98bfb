package catalog

import "errors"

// Sentinel errors for catalog operations following Go best practices.
// These enable reliable error checking with errors.Is()
var (
	// ErrDuplicateName indicates a demo name is already registered
	ErrDuplicateName = errors.New("demo name already registered")

	// ErrNotFound indicates no demo is registered under the given name
	ErrNotFound = errors.New("demo not found")
)
