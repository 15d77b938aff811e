package models

import (
	"time"
)

// EmotionalState is the label shown to the user for a focus session.
type EmotionalState string

const (
	Focused    EmotionalState = "focused"
	Productive EmotionalState = "productive"
	Distracted EmotionalState = "distracted"
	Frustrated EmotionalState = "frustrated"
	// Tired is never produced by the classifier. It is kept for signals the
	// metric generator does not have (session length, time of day).
	Tired EmotionalState = "tired"
)

// EmotionalStates lists every valid state in display order.
var EmotionalStates = []EmotionalState{
	Focused,
	Productive,
	Distracted,
	Frustrated,
	Tired,
}

// ResourceSource records how a resource was found.
type ResourceSource string

const (
	SourceAISearch      ResourceSource = "ai-search"
	SourceAutoDiscovery ResourceSource = "auto-discovery"
)

// FocusSession is a single timed focus-tracking interval bound to a goal.
type FocusSession struct {
	StartTime time.Time `json:"start_time"`
	// EndTime is nil while the session is active
	EndTime               *time.Time     `json:"end_time,omitempty"`
	ID                    string         `json:"id"`
	GoalID                string         `json:"goal_id"`
	TaskTitle             string         `json:"task_title,omitempty"`
	EmotionalState        EmotionalState `json:"emotional_state"`
	DurationMinutes       int            `json:"duration_minutes"`
	FocusPercentage       int            `json:"focus_percentage"`
	DistractionPercentage int            `json:"distraction_percentage"`
	TabSwitches           int            `json:"tab_switches"`
}

// Ended reports whether the session has reached its terminal state.
func (s *FocusSession) Ended() bool {
	return s.EndTime != nil
}

// Clone returns a deep copy of the session.
func (s *FocusSession) Clone() FocusSession {
	c := *s

	if s.EndTime != nil {
		end := *s.EndTime
		c.EndTime = &end
	}

	return c
}

// Resource is a candidate learning resource for a task.
type Resource struct {
	URL       string         `json:"url"`
	Title     string         `json:"title"`
	Source    ResourceSource `json:"source"`
	Relevance int            `json:"relevance"`
}

// Task is a single step towards a goal.
type Task struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	GoalID    string    `json:"goal_id"`
	Title     string    `json:"title"`
	// Resources holds resource URLs in insertion order without duplicates
	Resources      []string `json:"resources"`
	Completed      bool     `json:"completed"`
	AutoDiscovered bool     `json:"auto_discovered"`
}

// Goal owns an ordered list of tasks.
type Goal struct {
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Tasks       []Task     `json:"tasks"`
}
