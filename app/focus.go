package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/solosprint/sprint/app/tui"
	"github.com/solosprint/sprint/internal/models"
	"github.com/solosprint/sprint/internal/osutil"
	"github.com/solosprint/sprint/internal/pathutil"
	"github.com/solosprint/sprint/session"
)

// focusAction handles the focus command which runs a live focus session for
// the current goal and reflects on it once it ends.
func focusAction(ctx *cli.Context) error {
	e, err := open(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	p := e.planner()

	goal, err := p.Goal()
	if err != nil {
		return err
	}

	var taskTitle string

	if n := ctx.Int("task"); n != 0 {
		task, err := p.Task(n)
		if err != nil {
			return err
		}

		taskTitle = task.Title
	}

	sess, err := runSession(e, goal, taskTitle)
	if err != nil {
		return err
	}

	if err := e.db.SaveSession(&sess); err != nil {
		return err
	}

	spinner, _ := pterm.DefaultSpinner.Start("Reflecting on your session...")

	reflection := e.reflector().Reflect(ctx.Context, sess)

	_ = spinner.Stop()

	printSummary(os.Stdout, sess, reflection)

	postSession(ctx.Context, e, sess, reflection)

	return nil
}

// runSession starts a session, shows it until the user ends it and returns
// the terminal snapshot.
func runSession(
	e *env,
	goal *models.Goal,
	taskTitle string,
) (models.FocusSession, error) {
	statusPath := pathutil.StatusFilePath()
	updates, relay := tui.Relay()

	ctrl := session.NewController(
		session.WithPolicy(session.Policy(e.cfg.Session.TabSwitchPolicy)),
		session.WithTickInterval(e.cfg.Session.TickInterval),
		session.WithLogger(e.logger),
		session.WithSnapshotHook(func(s models.FocusSession) {
			if !s.Ended() {
				if err := writeStatusFile(statusPath, s); err != nil {
					e.logger.Warn(
						"status file not written",
						slog.Any("error", errStatusFile.Wrap(err)),
					)
				}
			}

			relay(s)
		}),
	)

	initial, err := ctrl.Start(goal.ID, taskTitle)
	if err != nil {
		return models.FocusSession{}, err
	}

	model := tui.New(
		goal.Title,
		initial,
		updates,
		tui.WithStyles(tui.NewStyles(e.cfg.Display.DarkTheme)),
	)

	_, runErr := tea.NewProgram(model).Run()

	// the session ends however the view exits
	final, err := ctrl.End()

	_ = os.Remove(statusPath)

	if err != nil {
		return models.FocusSession{}, err
	}

	if runErr != nil {
		e.logger.Error("session view failed", slog.Any("error", runErr))
	}

	return final, nil
}

// postSession sends the desktop notification and runs the session command.
// Failures are reported but do not fail the command: the session is already
// saved.
func postSession(
	ctx context.Context,
	e *env,
	sess models.FocusSession,
	reflection string,
) {
	if e.cfg.Notifications.Enabled {
		title := fmt.Sprintf(
			"Focus session complete (%s)",
			sess.EmotionalState,
		)

		if err := beeep.Notify(title, reflection, ""); err != nil {
			pterm.Error.Printfln("unable to display notification: %v", err)
		}
	}

	if err := runSessionCmd(ctx, e.cfg.Settings.SessionCmd); err != nil {
		e.logger.Error("session command failed", slog.Any("error", err))
		pterm.Error.Println(err)
	}
}

// runSessionCmd executes the configured command line, if any.
func runSessionCmd(ctx context.Context, line string) error {
	cmd, err := osutil.Command(line)
	if err != nil {
		return errSessionCmd.Wrap(err)
	}

	if cmd == nil {
		return nil
	}

	slog.InfoContext(ctx, "running session command", slog.String("cmd", line))

	if err := cmd.Run(); err != nil {
		return errSessionCmd.Wrap(err)
	}

	return nil
}
