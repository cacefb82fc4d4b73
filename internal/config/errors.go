package config

import "errors"

var (
	// ErrInvalidRule indicates a rule file entry failed validation.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrInvalidLogging indicates an unknown log level or format.
	ErrInvalidLogging = errors.New("invalid logging config")
)
