package models

import "fmt"

// ValidationError reports a field-level constraint violation. It is raised
// before anything reaches the store, so a failed validation never leaves a
// partial write behind.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
