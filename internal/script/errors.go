// Package script provides a Lua host for toolkit client scripts.
// This file defines common error types used throughout the package.
package script

import "errors"

var (
	// ErrUnsupportedCapability is returned when a script hands a value that
	// lacks the required widget capability to a toolkit function
	// (e.g., a plain table passed to toggle_with_button).
	ErrUnsupportedCapability = errors.New("unsupported capability")

	// ErrMissingArgument is returned when a toolkit function is called
	// without a required argument.
	ErrMissingArgument = errors.New("missing argument")

	// ErrResourceLimit is returned when a script exceeds the CPU or memory
	// limit of its RuntimeConfig.
	ErrResourceLimit = errors.New("script resource limit exceeded")
)
