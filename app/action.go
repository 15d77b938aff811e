package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/solosprint/sprint/internal/models"
	"github.com/solosprint/sprint/internal/osutil"
	"github.com/solosprint/sprint/internal/pathutil"
	"github.com/solosprint/sprint/internal/timeutil"
	"github.com/solosprint/sprint/planner"
	"github.com/solosprint/sprint/stats"
	"github.com/solosprint/sprint/store"
)

const (
	envNoColor       = "NO_COLOR"
	envSprintNoColor = "SPRINT_NO_COLOR"
)

// goalAction handles the goal command which replaces the current goal with a
// new one and breaks it into tasks.
func goalAction(ctx *cli.Context) error {
	text := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))

	if text == "" {
		err := huh.NewInput().
			Title("What do you want to achieve?").
			Placeholder("e.g. Learn the basics of React").
			Value(&text).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errEmptyGoal
				}

				return nil
			}).
			Run()
		if err != nil {
			return err
		}
	}

	e, err := open(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	spinner, _ := pterm.DefaultSpinner.Start("Breaking your goal into tasks...")

	goal, err := e.planner().SetGoal(ctx.Context, text)
	if err != nil {
		_ = spinner.Stop()
		return err
	}

	spinner.Success("Goal saved")

	printTasksTable(os.Stdout, goal)

	return nil
}

// tasksAction handles the tasks command and prints the current goal's tasks.
func tasksAction(ctx *cli.Context) error {
	e, err := open(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	goal, err := e.planner().Goal()
	if err != nil {
		if errors.Is(err, planner.ErrNoGoal) {
			pterm.Info.Println(noGoalMsg)
			return nil
		}

		return err
	}

	if ctx.Bool("json") {
		return printJSON(goal)
	}

	printTasksTable(os.Stdout, goal)

	return nil
}

// toggleAction handles the toggle command which flips the completion state of
// a task.
func toggleAction(ctx *cli.Context) error {
	n, err := taskNumber(ctx.Args().First())
	if err != nil {
		return err
	}

	e, err := open(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	task, err := e.planner().ToggleTask(n)
	if err != nil {
		return err
	}

	state := "pending"
	if task.Completed {
		state = "completed"
	}

	pterm.Success.Printfln("Task %d (%s) marked as %s", n, task.Title, state)

	return nil
}

// resourcesAction handles the resources command which finds learning
// resources for a task and attaches them to it.
func resourcesAction(ctx *cli.Context) error {
	n, err := taskNumber(ctx.Args().First())
	if err != nil {
		return err
	}

	e, err := open(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	spinner, _ := pterm.DefaultSpinner.Start("Searching for resources...")

	resources, task, err := e.planner().DiscoverResources(ctx.Context, n)
	if err != nil {
		_ = spinner.Stop()
		return err
	}

	spinner.Success(fmt.Sprintf("Found %d resources for %q", len(resources), task.Title))

	if ctx.Bool("json") {
		return printJSON(resources)
	}

	printResourcesTable(os.Stdout, resources)

	return nil
}

// historyAction handles the history command and prints a table of the focus
// sessions started within a time period.
func historyAction(ctx *cli.Context) error {
	sessions, _, _, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(sessions)
	}

	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printHistoryTable(os.Stdout, sessions)

	return nil
}

// statsAction computes the stats for the specified time period.
func statsAction(ctx *cli.Context) error {
	sessions, start, end, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	s := &stats.Stats{
		Start: start,
		End:   end,
	}

	s.Render(os.Stdout, sessions)

	return nil
}

// sessionHelper returns the finished sessions selected by the --since,
// --period and --goal flags, along with the time range.
func sessionHelper(
	ctx *cli.Context,
) ([]models.FocusSession, time.Time, time.Time, error) {
	start, end, err := historyRange(
		ctx.String("since"),
		timeutil.Period(ctx.String("period")),
		time.Now(),
	)
	if err != nil {
		return nil, start, end, err
	}

	e, err := open(ctx)
	if err != nil {
		return nil, start, end, err
	}

	defer e.Close()

	var goalID string

	if ctx.Bool("goal") {
		goal, err := e.planner().Goal()
		if err != nil {
			return nil, start, end, err
		}

		goalID = goal.ID
	}

	sessions, err := e.db.GetSessions(start, end, goalID)

	return sessions, start, end, err
}

// historyRange resolves the --since and --period flags into a time range.
func historyRange(
	since string,
	period timeutil.Period,
	now time.Time,
) (time.Time, time.Time, error) {
	if since != "" {
		start, err := timeutil.FromStr(since)
		if err != nil {
			return time.Time{}, time.Time{}, errInvalidSince.Fmt(since)
		}

		return start, now, nil
	}

	return timeutil.PeriodBounds(period, now)
}

// statusAction handles the status command and prints the status of the
// running focus session.
func statusAction(_ *cli.Context) error {
	if err := pathutil.Initialize(); err != nil {
		return err
	}

	inUse, err := store.InUse(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	// the database is only locked while a session runs
	if !inUse {
		return nil
	}

	sess, err := readStatusFile(pathutil.StatusFilePath())
	if err != nil || sess == nil {
		return err
	}

	pterm.Println(statusLine(sess, time.Now()))

	return nil
}

// resetAction handles the reset command which clears the current goal.
func resetAction(ctx *cli.Context) error {
	e, err := open(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	if err := e.planner().Reset(); err != nil {
		return err
	}

	pterm.Success.Println("Goal and tasks cleared")

	return nil
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	// writes the default config if it does not exist yet
	e, err := load(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	cmd := exec.Command(osutil.Editor(), pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func taskNumber(arg string) (int, error) {
	if arg == "" {
		return 0, errMissingTaskNumber
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errInvalidTaskNumber.Fmt(arg)
	}

	return n, nil
}

func printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	pterm.Println(string(b))

	return nil
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if SPRINT_NO_COLOR is set
	if _, exists := os.LookupEnv(envSprintNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting sprint")

	return nil
}
