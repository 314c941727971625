package domain

import "fmt"

// ErrInvalidConfiguration indicates a bracket table that breaks its ordering or contiguity rules.
type ErrInvalidConfiguration struct {
	Table  string
	Reason string
}

func (e *ErrInvalidConfiguration) Error() string {
	return fmt.Sprintf("invalid bracket table %s: %s", e.Table, e.Reason)
}

// ErrDegenerateInput indicates an input that would divide by zero or leave a formula undefined.
type ErrDegenerateInput struct {
	Field  string
	Reason string
}

func (e *ErrDegenerateInput) Error() string {
	return fmt.Sprintf("degenerate input '%s': %s", e.Field, e.Reason)
}

// ErrUnknownTable indicates a lookup for a jurisdiction/year with no registered table.
type ErrUnknownTable struct {
	Jurisdiction string
	Year         int
}

func (e *ErrUnknownTable) Error() string {
	return fmt.Sprintf("no bracket table for %s/%d", e.Jurisdiction, e.Year)
}
