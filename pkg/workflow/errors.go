package workflow

import (
	"errors"
	"fmt"
)

var (
	// ErrAborted signals the user aborted an interactive prompt (Ctrl+C).
	ErrAborted = errors.New("workflow: aborted")
	// ErrNilCreator is returned when a submit has nobody to create the document.
	ErrNilCreator = errors.New("workflow: creator is nil")
)

// FieldError reports a form field that failed validation.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("workflow: %s: %s", e.Field, e.Message)
}

// IsFieldError reports whether err wraps a *FieldError.
func IsFieldError(err error) bool {
	var target *FieldError
	return errors.As(err, &target)
}
