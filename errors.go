package ku

import "errors"

var (
	// Bad or missing CLI input. Nothing has run yet.
	ErrInvalidArgs = errors.New("invalid arguments")

	ErrConfigNotFound = errors.New("build config not found")
	ErrConfigParse    = errors.New("build config parse error")
	ErrConfigInvalid  = errors.New("invalid build config")

	// An external process exited non-zero or could not be started.
	ErrCommandFailed = errors.New("command failed")
)
