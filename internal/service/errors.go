package service

import (
	"errors"
	"strings"
)

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("missing required fields")
	// ErrNotFound reports an id that is not in the roster.
	ErrNotFound = errors.New("student not found")
)

// ValidationError lists the required fields that were empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "please fill in all fields (missing: " + strings.Join(e.Fields, ", ") + ")"
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
