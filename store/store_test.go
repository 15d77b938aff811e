package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/solosprint/sprint/internal/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "sprint.db"))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func endedSession(id, goalID string, start time.Time, mins int) models.FocusSession {
	end := start.Add(time.Duration(mins) * time.Minute)

	return models.FocusSession{
		ID:                    id,
		GoalID:                goalID,
		StartTime:             start,
		EndTime:               &end,
		DurationMinutes:       mins,
		FocusPercentage:       90,
		DistractionPercentage: 10,
		EmotionalState:        models.Focused,
	}
}

func TestWorkspaceRoundTrip(t *testing.T) {
	c := newTestClient(t)

	got, err := c.Workspace()
	if err != nil {
		t.Fatal(err)
	}

	assert.Nil(t, got, "expected no workspace in a new database")

	created := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	goal := &models.Goal{
		ID:        "g1",
		Title:     "Learn Go",
		CreatedAt: created,
		Tasks: []models.Task{
			{ID: "t1", GoalID: "g1", Title: "Read the tour", CreatedAt: created},
			{
				ID:             "t2",
				GoalID:         "g1",
				Title:          "Build a CLI",
				CreatedAt:      created,
				Completed:      true,
				Resources:      []string{"https://go.dev/doc"},
				AutoDiscovered: true,
			},
		},
	}

	if err = c.SaveWorkspace(goal); err != nil {
		t.Fatal(err)
	}

	got, err = c.Workspace()
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(goal, got); diff != "" {
		t.Errorf("workspace mismatch (-want +got):\n%s", diff)
	}

	if err = c.ResetWorkspace(); err != nil {
		t.Fatal(err)
	}

	got, err = c.Workspace()
	if err != nil {
		t.Fatal(err)
	}

	assert.Nil(t, got)
}

func TestSaveSessionRejectsActive(t *testing.T) {
	c := newTestClient(t)

	err := c.SaveSession(&models.FocusSession{ID: "s1", StartTime: time.Now()})
	if !errors.Is(err, errSessionActive) {
		t.Errorf("expected active session error, but got: %v", err)
	}
}

func TestGetSessions(t *testing.T) {
	c := newTestClient(t)

	day := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

	sessions := []models.FocusSession{
		endedSession("s0", "g1", day.Add(-2*time.Hour), 30),
		// started before the range but ended inside it
		endedSession("s1", "g1", day.Add(-10*time.Minute), 25),
		endedSession("s2", "g2", day.Add(9*time.Hour), 45),
		endedSession("s3", "g1", day.Add(9*time.Hour+500*time.Millisecond), 5),
		endedSession("s4", "g1", day.Add(30*time.Hour), 10),
	}

	for i := range sessions {
		if err := c.SaveSession(&sessions[i]); err != nil {
			t.Fatal(err)
		}
	}

	table := []struct {
		name   string
		goalID string
		want   []string
	}{
		{"all goals", "", []string{"s1", "s2", "s3"}},
		{"one goal", "g1", []string{"s1", "s3"}},
		{"unknown goal", "g9", nil},
	}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.GetSessions(day, day.Add(24*time.Hour-time.Second), tc.goalID)
			if err != nil {
				t.Fatal(err)
			}

			var ids []string
			for _, s := range got {
				ids = append(ids, s.ID)
			}

			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestSecondClientTimesOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprint.db")

	c, err := NewClient(path)
	if err != nil {
		t.Fatal(err)
	}

	defer c.Close()

	_, err = NewClient(path)
	if !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("expected already running error, but got: %v", err)
	}
}

func TestInUse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprint.db")

	inUse, err := InUse(path)
	assert.NoError(t, err)
	assert.False(t, inUse)

	c, err := NewClient(path)
	if err != nil {
		t.Fatal(err)
	}

	defer c.Close()

	inUse, err = InUse(path)
	assert.NoError(t, err)
	assert.True(t, inUse)
}
