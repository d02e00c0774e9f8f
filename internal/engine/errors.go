package engine

import "errors"

var (
	// ErrInvalidConfig is returned by Start for unusable engine parameters.
	ErrInvalidConfig = errors.New("engine: invalid config")

	// ErrPersistenceUnavailable wraps high score store failures.
	// It is never fatal; the session keeps an in-memory best.
	ErrPersistenceUnavailable = errors.New("engine: persistence unavailable")
)
