package models

import "fmt"

// ValidationError marks input rejected at a mutation boundary.
// The state the mutation targeted is left unchanged.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

func ErrInvalidConfig(field, value string) error {
	return &ValidationError{Field: field, Value: value}
}
