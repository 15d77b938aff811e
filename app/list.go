package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/solosprint/sprint/internal/models"
	"github.com/solosprint/sprint/internal/timeutil"
	"github.com/solosprint/sprint/internal/ui"
)

const (
	noSessionsMsg = "No sessions found for the specified time range"
	noGoalMsg     = "No goal set. Run 'sprint goal' to create one"

	dateLayout = "Jan 02, 2006 03:04 PM"
)

// printTasksTable prints the goal's tasks to the command-line.
func printTasksTable(w io.Writer, goal *models.Goal) {
	tableBody := make([][]string, len(goal.Tasks))

	for i := range goal.Tasks {
		task := goal.Tasks[i]

		statusText := ui.Red("pending")
		if task.Completed {
			statusText = ui.Green("completed")
		}

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			task.Title,
			statusText,
			fmt.Sprintf("%d", len(task.Resources)),
		}
	}

	tableBody = append([][]string{
		{"#", "TASK", "STATUS", "RESOURCES"},
	}, tableBody...)

	fmt.Fprintln(w, ui.Highlight(goal.Title))

	ui.PrintTable(tableBody, w)
}

// printResourcesTable prints discovered resources, most relevant first.
func printResourcesTable(w io.Writer, resources []models.Resource) {
	tableBody := make([][]string, len(resources))

	for i, r := range resources {
		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			r.Title,
			fmt.Sprintf("%d/10", r.Relevance),
			string(r.Source),
			ui.Cyan(r.URL),
		}
	}

	tableBody = append([][]string{
		{"#", "TITLE", "RELEVANCE", "SOURCE", "URL"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// printHistoryTable prints finished sessions followed by their totals.
func printHistoryTable(w io.Writer, sessions []models.FocusSession) {
	tableBody := make([][]string, len(sessions))

	for i := range sessions {
		sess := sessions[i]

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			sess.StartTime.Format(dateLayout),
			timeutil.FormatMinutes(sess.DurationMinutes),
			fmt.Sprintf("%d%%", sess.FocusPercentage),
			fmt.Sprintf("%d", sess.TabSwitches),
			ui.State(sess.EmotionalState),
			sess.TaskTitle,
		}
	}

	tableBody = append([][]string{
		{"#", "START DATE", "DURATION", "FOCUS", "TAB SWITCHES", "STATE", "TASK"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)

	fmt.Fprintln(w, historyTotals(sessions))
}

// historyTotals summarises sessions as total time and average focus.
func historyTotals(sessions []models.FocusSession) string {
	if len(sessions) == 0 {
		return ""
	}

	var mins, focus int

	for i := range sessions {
		mins += sessions[i].DurationMinutes
		focus += sessions[i].FocusPercentage
	}

	parts := []string{
		fmt.Sprintf("%d sessions", len(sessions)),
		timeutil.FormatMinutes(mins) + " focused",
		fmt.Sprintf(
			"%d%% average focus",
			timeutil.Round(float64(focus)/float64(len(sessions))),
		),
	}

	return strings.Join(parts, " · ")
}
