package converter

import "errors"

var (
	// ErrConverterNotFound indicates the converter executable was not found on PATH.
	ErrConverterNotFound = errors.New("converter binary not found")
	// ErrConverterFailed indicates the converter could not be run at all (as
	// opposed to running and exiting non-zero).
	ErrConverterFailed = errors.New("converter execution failed")
	// ErrUnknownBackend indicates an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown converter backend")
)
