package app

import "github.com/solosprint/sprint/internal/apperr"

var (
	errEmptyGoal = &apperr.Error{
		Message: "a goal is required",
	}

	errMissingTaskNumber = &apperr.Error{
		Message: "a task number is required (see 'sprint tasks')",
	}

	errInvalidTaskNumber = &apperr.Error{
		Message: "invalid task number: %s",
	}

	errInvalidSince = &apperr.Error{
		Message: "unable to parse date: %s",
	}

	errSessionCmd = &apperr.Error{
		Message: "session command failed",
	}

	errStatusFile = &apperr.Error{
		Message: "unable to update the status file",
	}
)
