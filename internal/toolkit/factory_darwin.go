//go:build darwin

package toolkit

// NewFactory creates the native widget family for macOS.
func NewFactory() (Factory, error) {
	return NewMacOSFactory(), nil
}
