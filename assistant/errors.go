package assistant

import "github.com/solosprint/sprint/internal/apperr"

var (
	// ErrValidation is returned for missing or malformed input.
	ErrValidation = &apperr.Error{
		Message: "invalid request: %s",
	}

	// ErrExternalService marks a failed or unparsable assistant call. The
	// public service methods log it and fall back, they never return it.
	ErrExternalService = &apperr.Error{
		Message: "assistant request failed",
	}

	errNoAPIKey = &apperr.Error{
		Message: "assistant API key is not configured",
	}

	errEmptyResponse = &apperr.Error{
		Message: "assistant returned an empty response",
	}

	errHTTPStatus = &apperr.Error{
		Message: "assistant API error (%d): %s",
	}

	errMaxRetries = &apperr.Error{
		Message: "max retries (%d) exceeded",
	}
)
