package domain

import (
	"errors"
	"strings"
)

// ErrRequiredFieldsMissing is matched by every ValidationError.
var ErrRequiredFieldsMissing = errors.New("required fields missing")

// ValidationError reports which required inquiry fields were empty.
// It is the only error a visitor can cause and never leaves the component
// that produced it except as a user-visible message.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Is lets callers match any ValidationError with errors.Is.
func (e *ValidationError) Is(target error) bool {
	return target == ErrRequiredFieldsMissing
}
