// Package stats reports focus session statistics for a time period
package stats

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/solosprint/sprint/internal/models"
	"github.com/solosprint/sprint/internal/timeutil"
	"github.com/solosprint/sprint/internal/ui"
)

const (
	barChartChar = "▇"
	dayLayout    = "Jan 02, 2006"
	hoursInADay  = 24
	maxDailyDays = 31
)

type aggregatePeriod string

const (
	daily   aggregatePeriod = "Daily"
	weekly  aggregatePeriod = "Weekly"
	hourly  aggregatePeriod = "Hourly"
	monthly aggregatePeriod = "Monthly"
)

// Summary holds the totals for a reporting period.
type Summary struct {
	States      map[models.EmotionalState]int
	Sessions    int
	Minutes     int
	AvgFocus    int
	AvgTabs     int
	DailyAvgMin int
}

// Aggregates holds minutes per day, weekday and hour of the day.
type Aggregates struct {
	Daily   map[time.Time]int
	Monthly map[time.Month]int
	Weekly  map[time.Weekday]int
	Hourly  map[int]int
}

// Stats computes statistics for sessions in [Start, End].
type Stats struct {
	Start time.Time
	End   time.Time
}

// filterSessions ignores sessions that never ended or end before they start.
func filterSessions(sessions []models.FocusSession) []models.FocusSession {
	filtered := make([]models.FocusSession, 0, len(sessions))

	for i := range sessions {
		sess := sessions[i]

		if !sess.Ended() || sess.EndTime.Before(sess.StartTime) {
			continue
		}

		filtered = append(filtered, sess)
	}

	return filtered
}

// days returns the number of calendar days in the reporting period.
func (s *Stats) days() int {
	hours := timeutil.Round(s.End.Sub(s.Start).Hours())

	return max(hours/hoursInADay, 1)
}

// Totals summarises sessions.
func (s *Stats) Totals(sessions []models.FocusSession) Summary {
	totals := Summary{
		States: make(map[models.EmotionalState]int),
	}

	var focus, tabs int

	for i := range sessions {
		sess := sessions[i]

		totals.Sessions++
		totals.Minutes += sess.DurationMinutes
		totals.States[sess.EmotionalState] += sess.DurationMinutes

		focus += sess.FocusPercentage
		tabs += sess.TabSwitches
	}

	if totals.Sessions == 0 {
		return totals
	}

	n := float64(totals.Sessions)

	totals.AvgFocus = timeutil.Round(float64(focus) / n)
	totals.AvgTabs = timeutil.Round(float64(tabs) / n)
	totals.DailyAvgMin = timeutil.Round(
		float64(totals.Minutes) / float64(s.days()),
	)

	return totals
}

// Aggregate spreads session minutes across days, months, weekdays and
// hours. Minutes that fall outside the reporting period are left out.
func (s *Stats) Aggregate(sessions []models.FocusSession) Aggregates {
	aggr := Aggregates{
		Daily:   make(map[time.Time]int),
		Monthly: make(map[time.Month]int),
		Weekly:  make(map[time.Weekday]int),
		Hourly:  make(map[int]int),
	}

	for date := timeutil.RoundToStart(s.Start); date.Before(s.End); date = date.AddDate(0, 0, 1) {
		aggr.Daily[date] = 0
	}

	for i := range sessions {
		sess := sessions[i]

		end := sess.StartTime.Add(
			time.Duration(sess.DurationMinutes) * time.Minute,
		)

		for date := sess.StartTime; date.Before(end); date = date.Add(time.Minute) {
			if date.Before(s.Start) {
				continue
			}

			if date.After(s.End) {
				break
			}

			aggr.Daily[timeutil.RoundToStart(date)]++
			aggr.Monthly[date.Month()]++
			aggr.Weekly[date.Weekday()]++
			aggr.Hourly[date.Hour()]++
		}
	}

	return aggr
}

// Render computes and writes the full report to w.
func (s *Stats) Render(w io.Writer, sessions []models.FocusSession) {
	sessions = filterSessions(sessions)

	// For all-time, start at the first session
	if s.Start.IsZero() && len(sessions) > 0 {
		s.Start = timeutil.RoundToStart(sessions[0].StartTime)
	}

	totals := s.Totals(sessions)
	aggr := s.Aggregate(sessions)

	timePeriod := fmt.Sprintf(
		"Reporting period: %s - %s",
		s.Start.Format("January 02, 2006"),
		s.End.Format("January 02, 2006"),
	)

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintln(timePeriod)

	var history string
	if s.days() <= maxDailyDays {
		history = barChart(daily, dailyBars(aggr.Daily))
	} else {
		history = barChart(monthly, monthlyBars(aggr.Monthly))
	}

	output := fmt.Sprint(
		header,
		getSummary(totals),
		getAverages(totals),
		getStates(totals),
		history,
		barChart(weekly, weeklyBars(aggr.Weekly)),
		barChart(hourly, hourlyBars(aggr.Hourly)),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}

func getSummary(totals Summary) string {
	return fmt.Sprintf(
		"%s\nTime focused: %s\nSessions: %s\n",
		ui.Cyan("Summary"),
		ui.Green(timeutil.FormatMinutes(totals.Minutes)),
		ui.Green(totals.Sessions),
	)
}

func getAverages(totals Summary) string {
	return fmt.Sprintf(
		"\n%s\nTime focused per day: %s\nFocus: %s\nTab switches per session: %s\n",
		ui.Cyan("Averages"),
		ui.Green(timeutil.FormatMinutes(totals.DailyAvgMin)),
		ui.Green(fmt.Sprintf("%d%%", totals.AvgFocus)),
		ui.Green(totals.AvgTabs),
	)
}

// getStates lists the minutes spent in each emotional state, longest first.
func getStates(totals Summary) string {
	if len(totals.States) == 0 {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("\n%s\n", ui.Cyan("States")))

	states := make([]models.EmotionalState, 0, len(totals.States))
	for k := range totals.States {
		states = append(states, k)
	}

	slices.SortStableFunc(states, func(a, b models.EmotionalState) int {
		if d := totals.States[b] - totals.States[a]; d != 0 {
			return d
		}

		return strings.Compare(string(a), string(b))
	})

	for _, st := range states {
		builder.WriteString(fmt.Sprintf(
			"%s: %s\n",
			ui.State(st),
			ui.Green(timeutil.FormatMinutes(totals.States[st])),
		))
	}

	return builder.String()
}

func dailyBars(data map[time.Time]int) pterm.Bars {
	keys := make([]time.Time, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, func(a, b time.Time) int {
		return a.Compare(b)
	})

	bars := make(pterm.Bars, 0, len(keys))
	for _, k := range keys {
		bars = append(bars, pterm.Bar{Label: k.Format(dayLayout), Value: data[k]})
	}

	return bars
}

func monthlyBars(data map[time.Month]int) pterm.Bars {
	var bars pterm.Bars

	for m := time.January; m <= time.December; m++ {
		if v, ok := data[m]; ok {
			bars = append(bars, pterm.Bar{Label: m.String(), Value: v})
		}
	}

	return bars
}

func weeklyBars(data map[time.Weekday]int) pterm.Bars {
	bars := make(pterm.Bars, 0, 7)

	for d := time.Sunday; d <= time.Saturday; d++ {
		bars = append(bars, pterm.Bar{Label: d.String(), Value: data[d]})
	}

	return bars
}

func hourlyBars(data map[int]int) pterm.Bars {
	bars := make(pterm.Bars, 0, hoursInADay)

	for h := range hoursInADay {
		bars = append(bars, pterm.Bar{
			Label: fmt.Sprintf("%02d:00", h),
			Value: data[h],
		})
	}

	return bars
}

func barChart(period aggregatePeriod, bars pterm.Bars) string {
	if len(bars) == 0 {
		return ""
	}

	header := ui.Cyan(fmt.Sprintf("\n%s breakdown (minutes)", period))

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}
