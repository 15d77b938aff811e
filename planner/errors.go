package planner

import "github.com/solosprint/sprint/internal/apperr"

var (
	// ErrValidation is returned for malformed requests.
	ErrValidation = &apperr.Error{
		Message: "invalid request: %s",
	}

	// ErrNoGoal is returned when an operation needs a goal but none is set.
	ErrNoGoal = &apperr.Error{
		Message: "no goal set: run 'sprint goal' first",
	}

	errTaskNotFound = &apperr.Error{
		Message: "task %d does not exist (the goal has %d tasks)",
	}
)
