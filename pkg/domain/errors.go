package domain

import "fmt"

// ValidationError reports a required or malformed field in a submitted
// field set. It is non-fatal: the offending operation is aborted with prior
// state intact, and Field tells the caller which input to focus.
type ValidationError struct {
	Entity EntityType
	Field  string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s field %q is missing or invalid", e.Entity, e.Field)
}

// SaveError wraps a durable-write failure for one slot. The in-memory state
// has already been updated when this is returned; callers surface it as a
// failed-to-save warning rather than pretending the write succeeded.
type SaveError struct {
	Slot string
	Err  error
}

func (e SaveError) Error() string {
	return fmt.Sprintf("save slot %q: %v", e.Slot, e.Err)
}

func (e SaveError) Unwrap() error { return e.Err }
