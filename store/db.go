package store

import (
	"time"

	"github.com/solosprint/sprint/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// Workspace returns the saved goal and its tasks, or nil if there is none
	Workspace() (*models.Goal, error)
	// SaveWorkspace replaces the saved goal and its tasks
	SaveWorkspace(goal *models.Goal) error
	// ResetWorkspace removes the saved goal and its tasks
	ResetWorkspace() error
	// SaveSession stores a finished focus session. Active sessions are
	// rejected
	SaveSession(sess *models.FocusSession) error
	// GetSessions returns finished sessions that overlap the time range,
	// optionally restricted to one goal
	GetSessions(startTime, endTime time.Time, goalID string) ([]models.FocusSession, error)
	// Close ends the database connection
	Close() error
}
