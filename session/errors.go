package session

import "github.com/solosprint/sprint/internal/apperr"

var (
	// ErrInvalidState is returned when an operation is illegal for the
	// current lifecycle state.
	ErrInvalidState = &apperr.Error{
		Message: "invalid session state: %s",
	}

	// ErrValidation is returned for malformed input.
	ErrValidation = &apperr.Error{
		Message: "invalid session input: %s",
	}
)
