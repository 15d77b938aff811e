package osutil

import "github.com/solosprint/sprint/internal/apperr"

var errParseCommand = &apperr.Error{
	Message: "unable to parse command",
}
