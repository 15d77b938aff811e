package store

import "github.com/solosprint/sprint/internal/apperr"

var (
	// ErrAlreadyRunning is returned when another process holds the database
	// lock.
	ErrAlreadyRunning = &apperr.Error{
		Message: "is sprint already running? Only one instance can use the database at a time",
	}

	errSessionActive = &apperr.Error{
		Message: "session %s is still active and cannot be saved",
	}

	errCorruptRecord = &apperr.Error{
		Message: "corrupt %s record",
	}
)
