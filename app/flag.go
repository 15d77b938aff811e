package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	tickIntervalFlag = &cli.StringFlag{
		Name:    "tick-interval",
		Aliases: []string{"i"},
		Usage:   "How often session metrics are sampled, as a duration or in milliseconds (default: 10s)",
	}

	policyFlag = &cli.StringFlag{
		Name:  "policy",
		Usage: "How the tab switch count handles jitter: 'monotonic' never lets it drop, 'reroll' samples it afresh (default: monotonic)",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is completed",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session",
	}

	taskFlag = &cli.IntFlag{
		Name:    "task",
		Aliases: []string{"t"},
		Usage:   "Number of the task to focus on, as listed by 'sprint tasks'",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include sessions after this date (e.g. '3 days ago', '2024-03-01'). Overrides --period",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Reporting period: all-time, today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days",
		Value:   "7days",
	}

	goalOnlyFlag = &cli.BoolFlag{
		Name:  "goal",
		Usage: "Only include sessions for the current goal",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}
)
