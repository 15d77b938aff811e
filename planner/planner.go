// Package planner manages the current goal and its task list. Every mutation
// is written through to the store so the workspace survives restarts.
package planner

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/solosprint/sprint/internal/models"
)

type (
	// Store persists the workspace.
	Store interface {
		Workspace() (*models.Goal, error)
		SaveWorkspace(goal *models.Goal) error
		ResetWorkspace() error
	}

	// Decomposer breaks a goal into task titles.
	Decomposer interface {
		Decompose(ctx context.Context, goal string) ([]string, error)
	}

	// Discoverer finds resources for a task.
	Discoverer interface {
		Discover(ctx context.Context, taskTitle, goal string) ([]models.Resource, error)
	}
)

// Planner coordinates goal and task changes.
type Planner struct {
	store      Store
	decomposer Decomposer
	discoverer Discoverer
	logger     *slog.Logger
	now        func() time.Time
}

// New returns a Planner.
func New(
	store Store,
	decomposer Decomposer,
	discoverer Discoverer,
	logger *slog.Logger,
) *Planner {
	if logger == nil {
		logger = slog.Default()
	}

	return &Planner{
		store:      store,
		decomposer: decomposer,
		discoverer: discoverer,
		logger:     logger,
		now:        time.Now,
	}
}

// Goal returns the current goal or ErrNoGoal.
func (p *Planner) Goal() (*models.Goal, error) {
	goal, err := p.store.Workspace()
	if err != nil {
		return nil, err
	}

	if goal == nil {
		return nil, ErrNoGoal
	}

	return goal, nil
}

// SetGoal decomposes text into tasks and replaces the current goal.
func (p *Planner) SetGoal(ctx context.Context, text string) (*models.Goal, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrValidation.Fmt("goal is required")
	}

	titles, err := p.decomposer.Decompose(ctx, text)
	if err != nil {
		return nil, err
	}

	goal, err := NewGoal(text, titles, p.now())
	if err != nil {
		return nil, err
	}

	if err := p.store.SaveWorkspace(goal); err != nil {
		return nil, err
	}

	p.logger.Info(
		"goal set",
		slog.String("goal_id", goal.ID),
		slog.Int("tasks", len(goal.Tasks)),
	)

	return goal, nil
}

// Task returns task n (1-based) of the current goal.
func (p *Planner) Task(n int) (*models.Task, error) {
	goal, err := p.Goal()
	if err != nil {
		return nil, err
	}

	if n < 1 || n > len(goal.Tasks) {
		return nil, errTaskNotFound.Fmt(n, len(goal.Tasks))
	}

	return &goal.Tasks[n-1], nil
}

// ToggleTask flips the completion flag of task n (1-based).
func (p *Planner) ToggleTask(n int) (*models.Task, error) {
	goal, err := p.Goal()
	if err != nil {
		return nil, err
	}

	task, err := Toggle(goal, n-1, p.now())
	if err != nil {
		return nil, err
	}

	if err := p.store.SaveWorkspace(goal); err != nil {
		return nil, err
	}

	return task, nil
}

// DiscoverResources finds resources for task n (1-based) and merges their
// URLs into the task.
func (p *Planner) DiscoverResources(
	ctx context.Context,
	n int,
) ([]models.Resource, *models.Task, error) {
	goal, err := p.Goal()
	if err != nil {
		return nil, nil, err
	}

	if n < 1 || n > len(goal.Tasks) {
		return nil, nil, errTaskNotFound.Fmt(n, len(goal.Tasks))
	}

	resources, err := p.discoverer.Discover(ctx, goal.Tasks[n-1].Title, goal.Title)
	if err != nil {
		return nil, nil, err
	}

	task, err := MergeResources(goal, n-1, resources)
	if err != nil {
		return nil, nil, err
	}

	if err := p.store.SaveWorkspace(goal); err != nil {
		return nil, nil, err
	}

	p.logger.Info(
		"resources merged",
		slog.String("task_id", task.ID),
		slog.Int("found", len(resources)),
		slog.Int("total", len(task.Resources)),
	)

	return resources, task, nil
}

// Reset clears the current goal and tasks.
func (p *Planner) Reset() error {
	return p.store.ResetWorkspace()
}
