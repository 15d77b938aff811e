package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// viper keys for every setting in the config file.
const (
	keyTickInterval         = "session.tick_interval"
	keyTabSwitchPolicy      = "session.tab_switch_policy"
	keyAPIKey               = "assistant.api_key"
	keyBaseURL              = "assistant.base_url"
	keyModel                = "assistant.model"
	keyTimeout              = "assistant.timeout"
	keyNotificationsEnabled = "notifications.enabled"
	keySessionCmd           = "settings.session_cmd"
	keyLogLevel             = "settings.log_level"
	keyDarkTheme            = "display.dark_theme"
)

// Environment variables consulted for the API key, in order.
const (
	EnvAPIKey       = "SPRINT_API_KEY"
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
)

// WithViperConfig returns an Option that loads configuration from Viper.
// A config file with the default values is written if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return errReadConfig.Wrap(err)
			}

			if err := v.WriteConfig(); err != nil {
				return errWriteConfig.Wrap(err)
			}
		}

		// bound after writing so that keys from the environment never end
		// up in the config file
		if err := v.BindEnv(keyAPIKey, EnvAPIKey, EnvOpenAIAPIKey); err != nil {
			return err
		}

		return loadViperConfig(v, c)
	}
}

// setDefaults registers the default value of every key.
func setDefaults(v *viper.Viper) {
	v.SetDefault(keyTickInterval, "10s")
	v.SetDefault(keyTabSwitchPolicy, PolicyMonotonic)
	v.SetDefault(keyAPIKey, "")
	v.SetDefault(keyBaseURL, "https://api.openai.com/v1")
	v.SetDefault(keyModel, "gpt-4")
	v.SetDefault(keyTimeout, "30s")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyDarkTheme, true)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	return nil
}
