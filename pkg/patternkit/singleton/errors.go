package singleton

import (
	"errors"
	"fmt"
)

// Sentinel errors for singleton access.
var (
	// ErrConstruction indicates the constructor rejected its argument.
	// Every *ConstructionError matches it with errors.Is.
	ErrConstruction = errors.New("construction failed")

	// ErrWaitTimeout indicates the caller gave up waiting for another
	// caller's construction to finish.
	ErrWaitTimeout = errors.New("timed out waiting for construction")
)

// ConstructionError wraps a constructor failure with the call that caused it.
type ConstructionError struct {
	// Registry is the name of the registry being populated.
	Registry string
	// Arg is the construction argument that was rejected.
	Arg string
	// Attempts is the number of constructor invocations made for this call.
	Attempts int
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("construct %s(%q) after %d attempt(s): %v", e.Registry, e.Arg, e.Attempts, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrConstruction.
func (e *ConstructionError) Is(target error) bool {
	return target == ErrConstruction
}
