package toolkit

import "strings"

// Canonical toolkit names.
const (
	NameWindows = "windows"
	NameMacOS   = "macos"
)

// Names returns the canonical names of all supported toolkits,
// in demonstration order.
func Names() []string {
	return []string{NameWindows, NameMacOS}
}

// NewFactoryFor creates the Factory for the named toolkit.
// Matching is case-insensitive. Supported values: "windows", and "macos"
// (aliases "darwin" and "mac").
func NewFactoryFor(name string) (Factory, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameWindows:
		return NewWindowsFactory(), nil
	case NameMacOS, "darwin", "mac":
		return NewMacOSFactory(), nil
	default:
		return nil, &UnsupportedToolkitError{Name: name}
	}
}
