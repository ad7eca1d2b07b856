package domain

import "fmt"

// ValidationError reports a missing or invalid user-supplied field.
// Operations that return one abort without mutating any state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}
