package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrInvalidAnswer is returned when a driver hands back an answer the
	// field constraint rejects.
	ErrInvalidAnswer = errors.New("prompt: invalid answer")
	// ErrDriverRequired is returned when Ask is called without a driver.
	ErrDriverRequired = errors.New("prompt: driver is required")
)
