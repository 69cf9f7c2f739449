package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a stored project does not exist.
var ErrNotFound = errors.New("not found")

// ConfigurationError reports chart settings that make layout impossible:
// window proportions, row count, window contiguity, scale stacks, swimlanes.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// ReferenceError reports an entity id that does not resolve.
type ReferenceError struct {
	Entity string
	Field  string
	ID     int
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("reference error: %s.%s: id %d not found", e.Entity, e.Field, e.ID)
}

// ValidationError reports entity data that should have been rejected
// before the engine was invoked.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Reason)
}

func configErr(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
