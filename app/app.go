// Package app wires sprint's commands to the planner, the session controller
// and the store
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/solosprint/sprint/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the sprint app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "sprint",
		Usage: `
		Sprint turns a goal into a short list of tasks, tracks how focused you
		are while you work on them and reflects on each session afterwards.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "goal",
				Usage:     "Set a new goal and break it into tasks",
				ArgsUsage: "[text]",
				Action:    goalAction,
			},
			{
				Name:   "tasks",
				Usage:  "List the tasks of the current goal",
				Flags:  []cli.Flag{jsonFlag},
				Action: tasksAction,
			},
			{
				Name:      "toggle",
				Usage:     "Mark a task as completed, or as pending again",
				ArgsUsage: "<task number>",
				Action:    toggleAction,
			},
			{
				Name:      "resources",
				Usage:     "Find learning resources for a task",
				ArgsUsage: "<task number>",
				Flags:     []cli.Flag{jsonFlag},
				Action:    resourcesAction,
			},
			{
				Name:  "focus",
				Usage: "Start a focus session for the current goal",
				Flags: []cli.Flag{
					taskFlag,
					tickIntervalFlag,
					policyFlag,
					disableNotificationFlag,
					sessionCmdFlag,
				},
				Action: focusAction,
			},
			{
				Name:  "history",
				Usage: "List finished focus sessions. Defaults to a reporting period of 7 days",
				Flags: []cli.Flag{
					sinceFlag,
					periodFlag,
					goalOnlyFlag,
					jsonFlag,
				},
				Action: historyAction,
			},
			{
				Name: "stats",
				Usage: `
				Track your progress with detailed statistics reporting. Defaults to a
				reporting period of 7 days`,
				Flags: []cli.Flag{
					sinceFlag,
					periodFlag,
					goalOnlyFlag,
				},
				Action: statsAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running focus session",
				Action: statusAction,
			},
			{
				Name:   "reset",
				Usage:  "Clear the current goal and its tasks",
				Action: resetAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
		},
		Before: beforeAction,
		After:  afterAction,
	}
}
