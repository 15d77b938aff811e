package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	TickInterval  string
	Policy        string
	SessionCmd    string
	DisableNotify bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			TickInterval:  ctx.String("tick-interval"),
			Policy:        ctx.String("policy"),
			SessionCmd:    ctx.String("session-cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.TickInterval != "" {
		d, err := parseDuration(opts.TickInterval)
		if err != nil {
			return errInvalidCLIDuration.Fmt("tick interval", err)
		}

		c.Session.TickInterval = d
	}

	if opts.Policy != "" {
		c.Session.TabSwitchPolicy = opts.Policy
	}

	if opts.SessionCmd != "" {
		c.Settings.SessionCmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	return nil
}

// parseDuration accepts a duration string, or a bare number of milliseconds.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	return time.ParseDuration(s + "ms")
}
