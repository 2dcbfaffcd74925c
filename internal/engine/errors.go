package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation indicates a validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrConflict indicates the hook lists conflict with each other.
	// It matches ErrValidation under errors.Is.
	ErrConflict = fmt.Errorf("%w: conflicting hook lists", ErrValidation)
)
