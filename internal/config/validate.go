package config

import (
	"log/slog"
	"time"
)

var (
	minTickInterval = 100 * time.Millisecond
	maxTickInterval = 10 * time.Minute
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateSession(); err != nil {
		return err
	}

	if c.Assistant.Timeout <= 0 {
		return errInvalidTimeout.Fmt(c.Assistant.Timeout)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateSession() error {
	d := c.Session.TickInterval
	if d < minTickInterval || d > maxTickInterval {
		return errInvalidTickInterval.Fmt(minTickInterval, maxTickInterval, d)
	}

	switch c.Session.TabSwitchPolicy {
	case PolicyMonotonic, PolicyReroll:
		return nil
	default:
		return errInvalidPolicy.Fmt(
			PolicyMonotonic,
			PolicyReroll,
			c.Session.TabSwitchPolicy,
		)
	}
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level

	if err := l.UnmarshalText([]byte(c.Settings.LogLevel)); err != nil {
		return l, errInvalidLogLevel.Fmt(c.Settings.LogLevel)
	}

	return l, nil
}
