//go:build !windows && !darwin

package toolkit

import "runtime"

// NewFactory returns an error: this OS has no native widget family.
// Use NewFactoryFor to pick a family explicitly.
func NewFactory() (Factory, error) {
	return nil, &UnsupportedToolkitError{Name: runtime.GOOS}
}
