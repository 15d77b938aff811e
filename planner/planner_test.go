package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/solosprint/sprint/internal/models"
)

// memStore keeps the workspace in memory and counts writes.
type memStore struct {
	goal   *models.Goal
	writes int
}

func (m *memStore) Workspace() (*models.Goal, error) {
	if m.goal == nil {
		return nil, nil
	}

	g := *m.goal
	g.Tasks = append([]models.Task(nil), m.goal.Tasks...)

	return &g, nil
}

func (m *memStore) SaveWorkspace(goal *models.Goal) error {
	m.writes++
	m.goal = goal

	return nil
}

func (m *memStore) ResetWorkspace() error {
	m.goal = nil
	return nil
}

type stubDecomposer []string

func (s stubDecomposer) Decompose(_ context.Context, _ string) ([]string, error) {
	return s, nil
}

type stubDiscoverer []models.Resource

func (s stubDiscoverer) Discover(_ context.Context, _, _ string) ([]models.Resource, error) {
	return s, nil
}

func newTestPlanner(store *memStore, resources ...models.Resource) *Planner {
	p := New(
		store,
		stubDecomposer{"Read", "Write", "Review"},
		stubDiscoverer(resources),
		nil,
	)
	p.now = func() time.Time {
		return time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	}

	return p
}

func TestSetGoal(t *testing.T) {
	store := &memStore{}
	p := newTestPlanner(store)

	goal, err := p.SetGoal(context.Background(), "  Finish the essay ")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "Finish the essay", goal.Title)
	assert.Len(t, goal.Tasks, 3)
	assert.Equal(t, 1, store.writes)

	for i, title := range []string{"Read", "Write", "Review"} {
		task := goal.Tasks[i]

		assert.Equal(t, title, task.Title)
		assert.Equal(t, goal.ID, task.GoalID)
		assert.False(t, task.Completed)
		assert.NotEmpty(t, task.ID)
	}
}

func TestSetGoalValidation(t *testing.T) {
	store := &memStore{}
	p := newTestPlanner(store)

	_, err := p.SetGoal(context.Background(), " ")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error, but got: %v", err)
	}

	assert.Equal(t, 0, store.writes)
}

func TestNoGoal(t *testing.T) {
	p := newTestPlanner(&memStore{})

	_, err := p.ToggleTask(1)
	if !errors.Is(err, ErrNoGoal) {
		t.Errorf("expected no goal error, but got: %v", err)
	}
}

func TestToggleTask(t *testing.T) {
	store := &memStore{}
	p := newTestPlanner(store)

	if _, err := p.SetGoal(context.Background(), "Essay"); err != nil {
		t.Fatal(err)
	}

	for n := 1; n <= 3; n++ {
		task, err := p.ToggleTask(n)
		if err != nil {
			t.Fatal(err)
		}

		assert.True(t, task.Completed)
	}

	assert.NotNil(t, store.goal.CompletedAt, "goal should complete with its last task")
	assert.Equal(t, 4, store.writes)

	if _, err := p.ToggleTask(2); err != nil {
		t.Fatal(err)
	}

	assert.Nil(t, store.goal.CompletedAt)
	assert.False(t, store.goal.Tasks[1].Completed)

	_, err := p.ToggleTask(4)
	if !errors.Is(err, errTaskNotFound) {
		t.Errorf("expected task not found, but got: %v", err)
	}
}

func TestDiscoverResourcesDeduplicates(t *testing.T) {
	store := &memStore{}
	p := newTestPlanner(
		store,
		models.Resource{URL: "https://b.example"},
		models.Resource{URL: "https://a.example"},
		models.Resource{URL: "https://b.example"},
	)

	if _, err := p.SetGoal(context.Background(), "Essay"); err != nil {
		t.Fatal(err)
	}

	store.goal.Tasks[0].Resources = []string{"https://a.example", "https://z.example"}

	_, task, err := p.DiscoverResources(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"https://a.example", "https://z.example", "https://b.example"}

	assert.Equal(t, want, task.Resources)
	assert.True(t, task.AutoDiscovered)
	assert.Equal(t, want, store.goal.Tasks[0].Resources)

	_, _, err = p.DiscoverResources(context.Background(), 0)
	if !errors.Is(err, errTaskNotFound) {
		t.Errorf("expected task not found, but got: %v", err)
	}
}

func TestReset(t *testing.T) {
	store := &memStore{}
	p := newTestPlanner(store)

	if _, err := p.SetGoal(context.Background(), "Essay"); err != nil {
		t.Fatal(err)
	}

	if err := p.Reset(); err != nil {
		t.Fatal(err)
	}

	_, err := p.Goal()
	if !errors.Is(err, ErrNoGoal) {
		t.Errorf("expected no goal error, but got: %v", err)
	}
}

func TestTask(t *testing.T) {
	store := &memStore{}
	p := newTestPlanner(store)

	_, err := p.SetGoal(context.Background(), "Finish the essay")
	if err != nil {
		t.Fatal(err)
	}

	task, err := p.Task(2)
	assert.NoError(t, err)
	assert.Equal(t, "Write", task.Title)

	for _, n := range []int{0, 4} {
		_, err = p.Task(n)
		assert.True(t, errors.Is(err, errTaskNotFound), "task %d", n)
	}
}
