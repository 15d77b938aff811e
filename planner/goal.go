package planner

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/solosprint/sprint/internal/models"
)

// NewGoal creates a goal with one incomplete task per title.
func NewGoal(title string, taskTitles []string, now time.Time) (*models.Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrValidation.Fmt("goal is required")
	}

	goal := &models.Goal{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: now,
		Tasks:     make([]models.Task, 0, len(taskTitles)),
	}

	for _, t := range taskTitles {
		goal.Tasks = append(goal.Tasks, models.Task{
			ID:        uuid.NewString(),
			GoalID:    goal.ID,
			Title:     t,
			CreatedAt: now,
			Resources: []string{},
		})
	}

	return goal, nil
}

// Toggle flips the completion flag of the task at index i and keeps the
// goal's completion time in step with its tasks.
func Toggle(goal *models.Goal, i int, now time.Time) (*models.Task, error) {
	if i < 0 || i >= len(goal.Tasks) {
		return nil, errTaskNotFound.Fmt(i+1, len(goal.Tasks))
	}

	task := &goal.Tasks[i]
	task.Completed = !task.Completed

	switch {
	case allCompleted(goal.Tasks):
		if goal.CompletedAt == nil {
			goal.CompletedAt = &now
		}
	default:
		goal.CompletedAt = nil
	}

	return task, nil
}

// MergeResources appends the resource URLs to the task at index i. Existing
// URLs keep their position and duplicates are dropped.
func MergeResources(goal *models.Goal, i int, resources []models.Resource) (*models.Task, error) {
	if i < 0 || i >= len(goal.Tasks) {
		return nil, errTaskNotFound.Fmt(i+1, len(goal.Tasks))
	}

	task := &goal.Tasks[i]

	seen := make(map[string]bool, len(task.Resources)+len(resources))
	merged := make([]string, 0, len(task.Resources)+len(resources))

	add := func(url string) {
		if url == "" || seen[url] {
			return
		}

		seen[url] = true
		merged = append(merged, url)
	}

	for _, url := range task.Resources {
		add(url)
	}

	for _, r := range resources {
		add(r.URL)
	}

	task.Resources = merged
	task.AutoDiscovered = true

	return task, nil
}

func allCompleted(tasks []models.Task) bool {
	if len(tasks) == 0 {
		return false
	}

	for i := range tasks {
		if !tasks[i].Completed {
			return false
		}
	}

	return true
}
