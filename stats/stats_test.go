package stats

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/solosprint/sprint/internal/models"
)

func session(start time.Time, mins, focus, tabs int, state models.EmotionalState) models.FocusSession {
	end := start.Add(time.Duration(mins) * time.Minute)

	return models.FocusSession{
		StartTime:       start,
		EndTime:         &end,
		DurationMinutes: mins,
		FocusPercentage: focus,
		TabSwitches:     tabs,
		EmotionalState:  state,
	}
}

func newStats() *Stats {
	return &Stats{
		Start: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC),
	}
}

func TestTotals(t *testing.T) {
	s := newStats()

	sessions := []models.FocusSession{
		session(time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), 30, 90, 6, models.Focused),
		session(time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC), 45, 95, 9, models.Focused),
		session(time.Date(2024, 3, 6, 20, 0, 0, 0, time.UTC), 15, 70, 3, models.Productive),
	}

	got := s.Totals(sessions)

	want := Summary{
		States: map[models.EmotionalState]int{
			models.Focused:    75,
			models.Productive: 15,
		},
		Sessions:    3,
		Minutes:     90,
		AvgFocus:    85,
		AvgTabs:     6,
		DailyAvgMin: 13,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("totals mismatch (-want +got):\n%s", diff)
	}
}

func TestTotalsEmpty(t *testing.T) {
	got := newStats().Totals(nil)

	assert.Equal(t, 0, got.Sessions)
	assert.Equal(t, 0, got.AvgFocus)
	assert.Empty(t, got.States)
}

func TestAggregate(t *testing.T) {
	s := newStats()

	sessions := []models.FocusSession{
		// crosses midnight into the reporting period
		session(time.Date(2024, 3, 3, 23, 50, 0, 0, time.UTC), 20, 90, 0, models.Focused),
		session(time.Date(2024, 3, 8, 10, 30, 0, 0, time.UTC), 45, 90, 0, models.Focused),
	}

	aggr := s.Aggregate(sessions)

	assert.Len(t, aggr.Daily, 7)
	assert.Equal(t, 10, aggr.Daily[time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)])
	assert.Equal(t, 45, aggr.Daily[time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)])
	assert.Equal(t, 55, aggr.Monthly[time.March])
	assert.Equal(t, 10, aggr.Weekly[time.Monday])
	assert.Equal(t, 45, aggr.Weekly[time.Friday])
	assert.Equal(t, 10, aggr.Hourly[0])
	assert.Equal(t, 30, aggr.Hourly[10])
	assert.Equal(t, 15, aggr.Hourly[11])
}

func TestFilterSessions(t *testing.T) {
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	before := start.Add(-time.Minute)

	valid := session(start, 10, 90, 0, models.Focused)
	active := models.FocusSession{StartTime: start}
	inverted := models.FocusSession{StartTime: start, EndTime: &before}

	got := filterSessions([]models.FocusSession{active, valid, inverted})

	assert.Len(t, got, 1)
	assert.Equal(t, 10, got[0].DurationMinutes)
}

func TestGetStatesOrder(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	got := getStates(Summary{States: map[models.EmotionalState]int{
		models.Distracted: 5,
		models.Focused:    40,
		models.Productive: 5,
	}})

	assert.Equal(
		t,
		"\nStates\nfocused: 40m\ndistracted: 5m\nproductive: 5m\n",
		got,
	)
}

func TestRenderAllTime(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	s := &Stats{End: time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC)}

	var buf bytes.Buffer

	s.Render(&buf, []models.FocusSession{
		session(time.Date(2024, 3, 8, 10, 30, 0, 0, time.UTC), 45, 90, 2, models.Focused),
	})

	assert.Equal(t, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), s.Start)
	assert.Contains(t, buf.String(), "Reporting period: March 08, 2024 - March 10, 2024")
	assert.Contains(t, buf.String(), "Time focused: 45m")
	assert.Contains(t, buf.String(), "Daily breakdown (minutes)")
}
