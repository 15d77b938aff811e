// Package config loads sprint settings from the config file and
// command-line flags
package config

import (
	"fmt"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Session       SessionConfig      `mapstructure:"session"`
		Assistant     AssistantConfig    `mapstructure:"assistant"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Display       DisplayConfig      `mapstructure:"display"`
	}

	// SessionConfig holds focus session settings
	SessionConfig struct {
		TabSwitchPolicy string        `mapstructure:"tab_switch_policy"`
		TickInterval    time.Duration `mapstructure:"tick_interval"`
	}

	// AssistantConfig holds the chat completions API settings
	AssistantConfig struct {
		APIKey  string        `mapstructure:"api_key"`
		BaseURL string        `mapstructure:"base_url"`
		Model   string        `mapstructure:"model"`
		Timeout time.Duration `mapstructure:"timeout"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SettingsConfig holds general settings
	SettingsConfig struct {
		SessionCmd string `mapstructure:"session_cmd"`
		LogLevel   string `mapstructure:"log_level"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

const (
	PolicyMonotonic = "monotonic"
	PolicyReroll    = "reroll"
)

// New creates a new Config, applies the options in order and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigValidation, err)
	}

	return cfg, nil
}
