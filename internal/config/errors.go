package config

import "github.com/solosprint/sprint/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidTickInterval = &apperr.Error{
		Message: "tick interval must be between %v and %v, got %v",
	}

	errInvalidPolicy = &apperr.Error{
		Message: "tab switch policy must be %q or %q, got %q",
	}

	errInvalidTimeout = &apperr.Error{
		Message: "assistant timeout must be positive, got %v",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %s",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid %s: %v",
	}
)
