package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func defaultConfig() Config {
	return Config{
		Session: SessionConfig{
			TickInterval:    10 * time.Second,
			TabSwitchPolicy: PolicyMonotonic,
		},
		Assistant: AssistantConfig{
			BaseURL: "https://api.openai.com/v1",
			Model:   "gpt-4",
			Timeout: 30 * time.Second,
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Settings: SettingsConfig{
			LogLevel: "info",
		},
		Display: DisplayConfig{
			DarkTheme: true,
		},
	}
}

func TestWithViperConfigDefaults(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvOpenAIAPIKey, "")

	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(WithViperConfig(path))
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(defaultConfig(), *cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	_, err = os.Stat(path)
	assert.NoError(t, err, "default config file should be written")
}

func TestWithViperConfigFile(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvOpenAIAPIKey, "")

	path := filepath.Join(t.TempDir(), "config.yml")

	content := `session:
  tick_interval: 2s
  tab_switch_policy: reroll
assistant:
  model: gpt-4o-mini
notifications:
  enabled: false
`

	err := os.WriteFile(path, []byte(content), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := New(WithViperConfig(path))
	if err != nil {
		t.Fatal(err)
	}

	want := defaultConfig()
	want.Session.TickInterval = 2 * time.Second
	want.Session.TabSwitchPolicy = PolicyReroll
	want.Assistant.Model = "gpt-4o-mini"
	want.Notifications.Enabled = false

	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestAPIKeyFromEnvironment(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvOpenAIAPIKey, "sk-test")

	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(WithViperConfig(path))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "sk-test", cfg.Assistant.APIKey)

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	assert.False(
		t,
		strings.Contains(string(b), "sk-test"),
		"api key from the environment must not be written to disk",
	)
}

func TestApplyCLIOptions(t *testing.T) {
	testCases := []struct {
		name    string
		opts    CLIOptions
		want    func(*Config)
		wantErr bool
	}{
		{
			name: "no overrides",
			want: func(*Config) {},
		},
		{
			name: "duration tick interval",
			opts: CLIOptions{TickInterval: "500ms"},
			want: func(c *Config) {
				c.Session.TickInterval = 500 * time.Millisecond
			},
		},
		{
			name: "bare millisecond tick interval",
			opts: CLIOptions{TickInterval: "1000"},
			want: func(c *Config) {
				c.Session.TickInterval = time.Second
			},
		},
		{
			name:    "malformed tick interval",
			opts:    CLIOptions{TickInterval: "soon"},
			wantErr: true,
		},
		{
			name: "policy, command and notifications",
			opts: CLIOptions{
				Policy:        PolicyReroll,
				SessionCmd:    "echo done",
				DisableNotify: true,
			},
			want: func(c *Config) {
				c.Session.TabSwitchPolicy = PolicyReroll
				c.Settings.SessionCmd = "echo done"
				c.Notifications.Enabled = false
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := defaultConfig()

			err := applyCLIOptions(&got, tc.opts)
			if tc.wantErr {
				assert.True(t, errors.Is(err, errInvalidCLIDuration))
				return
			}

			assert.NoError(t, err)

			want := defaultConfig()
			tc.want(&want)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			modify: func(*Config) {},
		},
		{
			name: "minimum tick interval",
			modify: func(c *Config) {
				c.Session.TickInterval = 100 * time.Millisecond
			},
		},
		{
			name: "tick interval too short",
			modify: func(c *Config) {
				c.Session.TickInterval = 99 * time.Millisecond
			},
			wantErr: errInvalidTickInterval,
		},
		{
			name: "tick interval too long",
			modify: func(c *Config) {
				c.Session.TickInterval = 11 * time.Minute
			},
			wantErr: errInvalidTickInterval,
		},
		{
			name: "unknown policy",
			modify: func(c *Config) {
				c.Session.TabSwitchPolicy = "sometimes"
			},
			wantErr: errInvalidPolicy,
		},
		{
			name: "zero timeout",
			modify: func(c *Config) {
				c.Assistant.Timeout = 0
			},
			wantErr: errInvalidTimeout,
		},
		{
			name: "unknown log level",
			modify: func(c *Config) {
				c.Settings.LogLevel = "loud"
			},
			wantErr: errInvalidLogLevel,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.modify(&cfg)

			err := cfg.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
		})
	}
}

func TestNewWrapsValidationErrors(t *testing.T) {
	invalid := func(c *Config) error {
		*c = defaultConfig()
		c.Session.TabSwitchPolicy = "never"

		return nil
	}

	_, err := New(invalid)
	assert.True(t, errors.Is(err, errConfigValidation))
	assert.True(t, errors.Is(err, errInvalidPolicy))
}
