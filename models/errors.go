package models

import "errors"

var (
	// ErrMissingThreadID is returned when a query page references an email
	// whose thread id could not be resolved.
	ErrMissingThreadID = errors.New("email without thread id")
)
