package toolkit

import "errors"

// ErrUnsupportedToolkit is matched by every error returned for a toolkit name
// or host OS that has no widget family.
var ErrUnsupportedToolkit = errors.New("unsupported toolkit")

// UnsupportedToolkitError reports the name that could not be resolved.
type UnsupportedToolkitError struct {
	Name string
}

func (e *UnsupportedToolkitError) Error() string {
	return "unsupported toolkit: " + e.Name
}

// Is reports whether target is ErrUnsupportedToolkit.
func (e *UnsupportedToolkitError) Is(target error) bool {
	return target == ErrUnsupportedToolkit
}
